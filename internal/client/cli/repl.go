package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error

	Dashboard(ctx context.Context, args []string) error
	Analytics(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
	SetBlocked(ctx context.Context, args []string, blocked bool) error
	Deposits(ctx context.Context, args []string) error
	Approve(ctx context.Context, args []string) error
	RandomUPI(ctx context.Context) error
	Spins(ctx context.Context, args []string) error
	UPIs(ctx context.Context, args []string) error
	AddUPI(ctx context.Context) error
	DeleteUPI(ctx context.Context, args []string) error
	Executives(ctx context.Context, args []string) error
	ExecStatus(ctx context.Context, args []string) error
	Chats(ctx context.Context, args []string) error
	Chat(ctx context.Context, args []string) error
	Reply(ctx context.Context, args []string) error
	Refresh(ctx context.Context, args []string) error
	Nav(ctx context.Context) error
}

const (
	guestHelp = "Available commands: login, signup, exit"
	userHelp  = "Available commands: dashboard [refresh], analytics, users, block <id>, unblock <id>, " +
		"deposits, approve <id>, randomupi, spins, upis, addupi, delupi <id>, execs, " +
		"execstatus <id> <approve|block> [designation] [permission], chats, chat <id>, " +
		"reply <id> <text>, refresh <resource>, nav, logout, exit\n" +
		"List filters: status=<value> range=<lastHour|today|thisWeek|thisMonth|all> q=<text>"
)

// runREPL starts a simple read–eval–print loop for the console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Unknown commands are reported back to the user. The loop exits on EOF or
// when the user types "exit" or "quit".
//
// Handlers report their own errors to the operator, so returned errors are
// ignored here and the loop keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "spin %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, userHelp)
			} else {
				fmt.Fprintln(w, guestHelp)
			}
			continue
		case "login":
			_ = a.Login(ctx)
			continue
		case "signup":
			_ = a.Signup(ctx)
			continue
		}

		if !a.isLoggedIn() {
			fmt.Fprintln(w, "Please log in first (type 'login').")
			continue
		}

		switch cmd {
		case "dashboard":
			_ = a.Dashboard(ctx, args)
		case "analytics":
			_ = a.Analytics(ctx, args)
		case "users":
			_ = a.Users(ctx, args)
		case "block":
			_ = a.SetBlocked(ctx, args, true)
		case "unblock":
			_ = a.SetBlocked(ctx, args, false)
		case "deposits":
			_ = a.Deposits(ctx, args)
		case "approve":
			_ = a.Approve(ctx, args)
		case "randomupi":
			_ = a.RandomUPI(ctx)
		case "spins", "bets":
			_ = a.Spins(ctx, args)
		case "upis":
			_ = a.UPIs(ctx, args)
		case "addupi":
			_ = a.AddUPI(ctx)
		case "delupi":
			_ = a.DeleteUPI(ctx, args)
		case "execs":
			_ = a.Executives(ctx, args)
		case "execstatus":
			_ = a.ExecStatus(ctx, args)
		case "chats":
			_ = a.Chats(ctx, args)
		case "chat":
			_ = a.Chat(ctx, args)
		case "reply":
			if len(args) > 1 {
				args = []string{args[0], afterFields(line, 2)}
			}
			_ = a.Reply(ctx, args)
		case "refresh":
			_ = a.Refresh(ctx, args)
		case "nav":
			_ = a.Nav(ctx)
		case "logout":
			_ = a.Logout(ctx)
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

// afterFields returns what follows the first n whitespace-separated fields of
// line, keeping the spacing inside the remainder.
func afterFields(line string, n int) string {
	s := strings.TrimRight(line, "\r\n")
	for range n {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		i := strings.IndexFunc(s, unicode.IsSpace)
		if i < 0 {
			return ""
		}
		s = s[i:]
	}
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
