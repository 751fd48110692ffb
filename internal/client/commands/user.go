package commands

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/spinadmin/internal/client/client"
	"github.com/dmitrijs2005/spinadmin/internal/client/models"
)

type SetUserBlocked struct {
	ID      string
	Blocked bool
}

func (c SetUserBlocked) Name() string {
	if c.Blocked {
		return "block user"
	}
	return "unblock user"
}

func (c SetUserBlocked) Target() string { return c.ID }

func (c SetUserBlocked) Validate() error {
	var v validator
	v.check(strings.TrimSpace(c.ID) != "", "id", "required")
	return v.err()
}

func (c SetUserBlocked) Execute(ctx context.Context, api client.Client) (Outcome[models.User], error) {
	if err := api.SetUserBlocked(ctx, c.ID, c.Blocked); err != nil {
		return Outcome[models.User]{}, err
	}
	return patch(func(u models.User) models.User {
		u.Blocked = c.Blocked
		return u
	}), nil
}
