package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/spinadmin/internal/client/commands"
	"github.com/dmitrijs2005/spinadmin/internal/client/models"
	"github.com/dmitrijs2005/spinadmin/internal/client/session"
)

var (
	errUsage      = errors.New("usage")
	errPageDenied = errors.New("page not available")
	errNotFound   = errors.New("not found")
)

func designationOptions() []string { return commands.Designations }

func (a *App) oneID(args []string, usage string) (string, bool) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return "", false
	}
	return args[0], true
}

func (a *App) SetBlocked(ctx context.Context, args []string, blocked bool) error {
	verb := "unblock"
	if blocked {
		verb = "block"
	}
	id, ok := a.oneID(args, verb+" <user id>")
	if !ok {
		return errUsage
	}
	if !a.allowed(session.PathUsers) {
		return errPageDenied
	}

	if err := a.userCmds.Run(ctx, commands.SetUserBlocked{ID: id, Blocked: blocked}); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "User %s %sed.\n", id, verb)
	return nil
}

func (a *App) Approve(ctx context.Context, args []string) error {
	id, ok := a.oneID(args, "approve <deposit id>")
	if !ok {
		return errUsage
	}
	if !a.allowed(session.PathDeposits) {
		return errPageDenied
	}

	if err := a.depCmds.Run(ctx, commands.ApproveDeposit{ID: id}); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "Deposit %s approved.\n", id)
	return nil
}

func (a *App) RandomUPI(ctx context.Context) error {
	upi, err := commands.RandomUPI(ctx, a.api, a.config.RequestTimeout)
	if err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "UPI:", upi)
	return nil
}

// AddUPI prompts for every field; validation happens before anything is sent.
func (a *App) AddUPI(ctx context.Context) error {
	if !a.allowed(session.PathUPI) {
		return errPageDenied
	}

	var cmd commands.AddUPI
	var err error
	if cmd.UPI, err = getSimpleText(a.reader, "UPI id (name@bank)", a.out); err != nil {
		return err
	}
	if cmd.Bank, err = GetChoice(a.reader, "Bank", commands.Banks, "", a.out); err != nil {
		return a.report(ctx, err)
	}
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Account holder name", &cmd.UserName},
		{"Mobile", &cmd.Mobile},
		{"Reference (optional)", &cmd.Reference},
	} {
		if *f.dst, err = getSimpleText(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}

	if err := a.upiCmds.Run(ctx, cmd); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "UPI %s added.\n", strings.TrimSpace(cmd.UPI))
	return nil
}

func (a *App) DeleteUPI(ctx context.Context, args []string) error {
	id, ok := a.oneID(args, "delupi <upi entry id>")
	if !ok {
		return errUsage
	}
	if !a.allowed(session.PathUPI) {
		return errPageDenied
	}

	if err := a.upiCmds.Run(ctx, commands.DeleteUPI{ID: id}); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "UPI entry %s deleted.\n", id)
	return nil
}

// ExecStatus takes "<id> <approve|block> [designation] [permission]". The
// designation may contain spaces ("Team Lead"); the permission is the last
// token when it names one. Executive operators are asked for a missing
// permission.
func (a *App) ExecStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: execstatus <id> <approve|block> [designation] [permission]")
		return errUsage
	}
	if !a.allowed(session.PathEmployee) {
		return errPageDenied
	}

	cmd := commands.ChangeExecutiveStatus{ID: args[0], Action: strings.ToLower(args[1]), Operator: a.operatorRole(ctx)}
	rest := args[2:]
	if n := len(rest); n > 0 && isPermission(rest[n-1]) {
		cmd.Permission = canonical(commands.Permissions, rest[n-1])
		rest = rest[:n-1]
	}
	if len(rest) > 0 {
		cmd.Designation = canonical(commands.Designations, strings.Join(rest, " "))
	}

	if ex, ok := a.execs.Get(cmd.ID); ok && !ex.Editable(cmd.Operator) {
		fmt.Fprintf(a.out, "Executive %s is read-only for you.\n", cmd.ID)
		return errPageDenied
	}

	if cmd.Operator != models.RoleAdmin && cmd.Permission == "" {
		p, err := GetChoice(a.reader, "Permission", commands.Permissions, "", a.out)
		if err != nil {
			return a.report(ctx, err)
		}
		cmd.Permission = p
	}

	if err := a.execCmds.Run(ctx, cmd); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "Executive %s: %s done.\n", cmd.ID, cmd.Action)
	return nil
}

// operatorRole asks the backend who is logged in, since the permission rule
// depends on it. The session role is used when the lookup fails.
func (a *App) operatorRole(ctx context.Context) models.Role {
	me, err := a.auth.Me(ctx)
	if err != nil {
		a.log.Warn(ctx, "identity lookup failed, using session role", "error", err)
		return a.gate.Role()
	}
	role, err := models.ParseRole(me.Role)
	if err != nil {
		a.log.Warn(ctx, "unexpected identity role, using session role", "role", me.Role)
		return a.gate.Role()
	}
	return role
}

func isPermission(s string) bool {
	for _, p := range commands.Permissions {
		if strings.EqualFold(p, s) {
			return true
		}
	}
	return false
}

// canonical returns the option spelled like s ignoring case, or s itself.
func canonical(opts []string, s string) string {
	for _, o := range opts {
		if strings.EqualFold(o, s) {
			return o
		}
	}
	return s
}

func (a *App) Reply(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: reply <chat id> <text>")
		return errUsage
	}
	if !a.allowed(session.PathChat) {
		return errPageDenied
	}

	text := strings.Join(args[1:], " ")
	if text == "" {
		var err error
		if text, err = GetMultiline(a.reader, "Message", a.out); err != nil {
			return err
		}
	}

	if err := a.chatCmds.Run(ctx, commands.SendChatMessage{ThreadID: args[0], Text: text}); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Sent.")
	return nil
}
