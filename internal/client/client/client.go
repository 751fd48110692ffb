package client

import (
	"context"

	"github.com/dmitrijs2005/spinadmin/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, role models.Role, email, password string) (string, error)
	Signup(ctx context.Context, role models.Role, req models.SignupRequest) error
	Me(ctx context.Context) (models.AdminIdentity, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	SetUserBlocked(ctx context.Context, id string, blocked bool) error

	ListDeposits(ctx context.Context) ([]models.Deposit, error)
	ApproveDeposit(ctx context.Context, id string) error
	RandomUPI(ctx context.Context) (string, error)

	ListSpins(ctx context.Context) ([]models.Spin, error)

	ListChats(ctx context.Context) ([]models.ChatThread, error)
	ReplyChat(ctx context.Context, threadID, text string) (models.ChatThread, error)

	ListUPIs(ctx context.Context) ([]models.UpiEntry, error)
	AddUPI(ctx context.Context, in models.NewUPI) (models.UpiEntry, error)
	DeleteUPI(ctx context.Context, id string) error

	ListExecutives(ctx context.Context) ([]models.Executive, error)
	UpdateExecutiveStatus(ctx context.Context, id string, upd models.ExecutiveStatusUpdate) error
}

// TokenSource yields the current session token, or "" when logged out.
type TokenSource interface {
	AccessToken() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) AccessToken() string { return f() }
