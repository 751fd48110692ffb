package commands

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrijs2005/spinadmin/internal/client/client"
	"github.com/dmitrijs2005/spinadmin/internal/client/models"
)

// ChangeExecutiveStatus approves or blocks an executive account. Operator is
// the role of whoever issues the change: admins always grant Write.
type ChangeExecutiveStatus struct {
	ID          string
	Action      string
	Designation string
	Permission  string
	Operator    models.Role
}

func (c ChangeExecutiveStatus) Name() string   { return c.Action + " executive" }
func (c ChangeExecutiveStatus) Target() string { return c.ID }

func (c ChangeExecutiveStatus) designation() string {
	if d := strings.TrimSpace(c.Designation); d != "" {
		return d
	}
	return DefaultDesignation
}

func (c ChangeExecutiveStatus) permission() string {
	if c.Operator == models.RoleAdmin {
		return "Write"
	}
	return strings.TrimSpace(c.Permission)
}

func (c ChangeExecutiveStatus) Validate() error {
	var v validator
	v.check(strings.TrimSpace(c.ID) != "", "id", "required")
	v.check(c.Action == ActionApprove || c.Action == ActionBlock, "action", "must be approve or block")
	v.check(slices.Contains(Designations, c.designation()), "designation", "unknown designation")
	v.check(slices.Contains(Permissions, c.permission()), "permission", "choose Read, Write or Both")
	return v.err()
}

// Execute reloads the executives afterwards since approval changes several
// fields server-side.
func (c ChangeExecutiveStatus) Execute(ctx context.Context, api client.Client) (Outcome[models.Executive], error) {
	err := api.UpdateExecutiveStatus(ctx, c.ID, models.ExecutiveStatusUpdate{
		Action:      c.Action,
		Designation: c.designation(),
		Permission:  c.permission(),
	})
	if err != nil {
		return Outcome[models.Executive]{}, err
	}
	return Outcome[models.Executive]{Kind: OutcomeReload}, nil
}
