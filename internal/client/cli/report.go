package cli

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrijs2005/spinadmin/internal/client/client"
	"github.com/dmitrijs2005/spinadmin/internal/client/commands"
)

// report tells the operator what went wrong in plain words. An unauthorized
// answer drops the session so the next command asks for a login.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var (
		rejected *client.RejectedError
		invalid  *commands.ValidationError
	)
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(a.out, "Session expired or not permitted. Please log in again.")
		a.forget(ctx)
		if lerr := a.auth.Logout(ctx); lerr != nil {
			a.log.Warn(ctx, "logout after unauthorized", "error", lerr)
		}
	case errors.As(err, &rejected):
		fmt.Fprintln(a.out, "Error:", rejected.Message)
	case errors.As(err, &invalid):
		for _, field := range slices.Sorted(maps.Keys(invalid.Fields)) {
			fmt.Fprintf(a.out, "Invalid %s: %s\n", field, invalid.Fields[field])
		}
	case errors.Is(err, client.ErrInFlight):
		fmt.Fprintln(a.out, "That row is still being updated, please wait.")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable. Check the base URL or try again later.")
	case errors.Is(err, client.ErrNotLoggedIn):
		fmt.Fprintln(a.out, "Please log in first (type 'login').")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
	return err
}
