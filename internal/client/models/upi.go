package models

import "time"

type UpiEntry struct {
	ID        string    `json:"id"`
	UPI       string    `json:"upi"`
	Bank      string    `json:"bank"`
	UserName  string    `json:"userName"`
	Mobile    string    `json:"mobile"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u UpiEntry) RecordID() string { return u.ID }

func (u UpiEntry) SearchFields() []string {
	return []string{u.UPI, u.UserName, u.Mobile, u.Bank}
}

func (u UpiEntry) When() time.Time { return u.CreatedAt }
