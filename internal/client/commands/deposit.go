package commands

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/spinadmin/internal/client/client"
	"github.com/dmitrijs2005/spinadmin/internal/client/models"
)

// ApproveDeposit marks a pending deposit as paid out.
type ApproveDeposit struct {
	ID string
}

func (c ApproveDeposit) Name() string   { return "approve deposit" }
func (c ApproveDeposit) Target() string { return c.ID }

func (c ApproveDeposit) Validate() error {
	var v validator
	v.check(strings.TrimSpace(c.ID) != "", "id", "required")
	return v.err()
}

func (c ApproveDeposit) Execute(ctx context.Context, api client.Client) (Outcome[models.Deposit], error) {
	if err := api.ApproveDeposit(ctx, c.ID); err != nil {
		return Outcome[models.Deposit]{}, err
	}
	return patch(func(d models.Deposit) models.Deposit {
		d.Status = models.DepositSuccess
		return d
	}), nil
}
