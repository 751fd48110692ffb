package models

import "time"

const (
	DepositPending  = "Pending"
	DepositSuccess  = "Success"
	DepositApproved = "Approved"
	DepositRejected = "Rejected"
)

type Deposit struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transactionId"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	Amount        float64   `json:"amount"`
	TotalDeposits int       `json:"totalDeposits"`
	Lifetime      float64   `json:"lifetime"`
	Mobile        string    `json:"mobile"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (d Deposit) RecordID() string { return d.ID }

func (d Deposit) SearchFields() []string {
	return []string{d.TransactionID, d.Mobile, d.Name, d.ID}
}

func (d Deposit) When() time.Time      { return d.CreatedAt }
func (d Deposit) StatusValue() string  { return d.Status }
func (d Deposit) AmountValue() float64 { return d.Amount }
