package models

import "time"

type Spin struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	UserName        string    `json:"userName"`
	Mobile          string    `json:"mobile"`
	Amount          float64   `json:"amount"`
	Result          string    `json:"result"`
	Multiplier      string    `json:"multiplier"`
	MultiplierIndex int       `json:"multiplierIndex"`
	WinAmount       float64   `json:"winAmount"`
	WalletAfterSpin float64   `json:"walletAfterSpin"`
	Timestamp       time.Time `json:"timestamp"`
}

func (s Spin) RecordID() string { return s.ID }

func (s Spin) SearchFields() []string {
	return []string{s.UserName, s.UserID, s.Mobile, s.ID}
}

func (s Spin) When() time.Time      { return s.Timestamp }
func (s Spin) StatusValue() string  { return s.Result }
func (s Spin) AmountValue() float64 { return s.Amount }
