package models

import "time"

type AdminIdentity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type DashboardStats struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalDeposits float64 `json:"totalDeposits"`
	TotalSpins    int     `json:"totalSpins"`
	TotalWinnings float64 `json:"totalWinnings"`
}

// Dashboard is the cached payload behind the summary cards.
type Dashboard struct {
	Stats       *DashboardStats `json:"stats"`
	RecentSpins []Spin          `json:"recentSpins"`

	CapturedAt time.Time `json:"-"`
}

// SignupRequest carries the fields the signup endpoints require.
type SignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Password    string `json:"password"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Role        string `json:"role"`
}

type NewUPI struct {
	UPI       string `json:"upi"`
	Bank      string `json:"bank"`
	UserName  string `json:"userName"`
	Mobile    string `json:"mobile"`
	Reference string `json:"reference"`
}

type ExecutiveStatusUpdate struct {
	Action      string `json:"action"`
	Designation string `json:"designation"`
	Permission  string `json:"permission"`
}
