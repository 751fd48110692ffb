package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Wallet    float64   `json:"wallet"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) RecordID() string       { return u.ID }
func (u User) SearchFields() []string { return []string{u.Name} }
func (u User) When() time.Time        { return u.CreatedAt }
func (u User) AmountValue() float64   { return u.Wallet }

func (u User) StatusValue() string {
	if u.Blocked {
		return "Blocked"
	}
	return "Active"
}
