package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/spinadmin/internal/client/client"
	"github.com/dmitrijs2005/spinadmin/internal/client/models"
)

type AddUPI struct {
	UPI       string
	Bank      string
	UserName  string
	Mobile    string
	Reference string
}

func (c AddUPI) Name() string { return "add upi" }

// Target keys new entries by the UPI id itself so the same id cannot be
// submitted twice concurrently.
func (c AddUPI) Target() string { return "new:" + strings.TrimSpace(c.UPI) }

func (c AddUPI) Validate() error {
	var v validator
	v.check(ValidUPI(strings.TrimSpace(c.UPI)), "upi", "must look like name@bank")
	v.check(ValidBank(c.Bank), "bank", "unsupported bank")
	v.check(ValidName(c.UserName), "userName", "letters and spaces only")
	v.check(ValidMobile(strings.TrimSpace(c.Mobile)), "mobile", "must be a 10 digit number starting with 6-9")
	return v.err()
}

func (c AddUPI) Execute(ctx context.Context, api client.Client) (Outcome[models.UpiEntry], error) {
	entry, err := api.AddUPI(ctx, models.NewUPI{
		UPI:       strings.TrimSpace(c.UPI),
		Bank:      c.Bank,
		UserName:  strings.TrimSpace(c.UserName),
		Mobile:    strings.TrimSpace(c.Mobile),
		Reference: strings.TrimSpace(c.Reference),
	})
	if err != nil {
		return Outcome[models.UpiEntry]{}, err
	}
	return Outcome[models.UpiEntry]{Kind: OutcomePrepend, Record: entry}, nil
}

type DeleteUPI struct {
	ID string
}

func (c DeleteUPI) Name() string   { return "delete upi" }
func (c DeleteUPI) Target() string { return c.ID }

func (c DeleteUPI) Validate() error {
	var v validator
	v.check(strings.TrimSpace(c.ID) != "", "id", "required")
	return v.err()
}

func (c DeleteUPI) Execute(ctx context.Context, api client.Client) (Outcome[models.UpiEntry], error) {
	if err := api.DeleteUPI(ctx, c.ID); err != nil {
		return Outcome[models.UpiEntry]{}, err
	}
	return Outcome[models.UpiEntry]{Kind: OutcomeRemove}, nil
}

// RandomUPI fetches a UPI id to hand out to a depositing user. It is
// read-only and changes no store.
func RandomUPI(ctx context.Context, api client.Client, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	upi, err := api.RandomUPI(ctx)
	if err != nil {
		return "", fmt.Errorf("random upi: %w", err)
	}
	return upi, nil
}
