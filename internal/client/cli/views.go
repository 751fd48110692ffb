package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/spinadmin/internal/client/filter"
	"github.com/dmitrijs2005/spinadmin/internal/client/models"
	"github.com/dmitrijs2005/spinadmin/internal/client/normalize"
	"github.com/dmitrijs2005/spinadmin/internal/client/render"
	"github.com/dmitrijs2005/spinadmin/internal/client/session"
	"github.com/dmitrijs2005/spinadmin/internal/client/store"
)

// allowed prints a notice and returns false when the gate routes path
// somewhere else.
func (a *App) allowed(path string) bool {
	if got := a.gate.Resolve(path); got != path {
		fmt.Fprintf(a.out, "Page %s is not available, showing nothing (resolved to %s).\n", path, got)
		return false
	}
	return true
}

func load[T models.Record](ctx context.Context, a *App, s *store.Store[T], refresh bool) error {
	if refresh {
		return s.Refresh(ctx)
	}
	return s.LoadFromCacheOrFetch(ctx, a.now())
}

// listView checks access, loads s and applies the filters in args.
func listView[T models.Record](ctx context.Context, a *App, path string, s *store.Store[T], args []string,
	canon func(string) string) ([]T, error) {
	if !a.allowed(path) {
		return nil, errPageDenied
	}

	la, err := parseListArgs(args, canon)
	if err != nil {
		return nil, a.report(ctx, err)
	}
	if err := load(ctx, a, s, la.refresh); err != nil {
		return nil, a.report(ctx, err)
	}
	return filter.View(s.Snapshot(), la.criteria, a.now()), nil
}

func (a *App) summary(label string, sum filter.Summary) {
	fmt.Fprintf(a.out, "%s: %s, total %s\n", label, render.Count(sum.Count), render.Amount(sum.Amount))
}

func (a *App) Dashboard(ctx context.Context, args []string) error {
	if !a.allowed(session.PathDashboard) {
		return errPageDenied
	}

	get := a.dashboard.Get
	if len(args) > 0 && args[0] == "refresh" {
		get = a.dashboard.Refresh
	}
	dash, err := get(ctx)
	if err != nil {
		return a.report(ctx, err)
	}

	st := dash.Stats
	keys := []string{"Total Users", "Total Deposits", "Total Spins", "Total Winnings", "Updated"}
	_ = render.Card(a.out, a.config.Title, keys, map[string]string{
		"Total Users":    render.Count(st.TotalUsers),
		"Total Deposits": render.Amount(st.TotalDeposits),
		"Total Spins":    render.Count(st.TotalSpins),
		"Total Winnings": render.Amount(st.TotalWinnings),
		"Updated":        render.Time(dash.CapturedAt),
	})

	fmt.Fprintln(a.out, "Recent spins:")
	return a.spinTable(dash.RecentSpins)
}

// Analytics shows deposit and spin totals for every time range.
func (a *App) Analytics(ctx context.Context, args []string) error {
	if !a.allowed(session.PathAnalytics) {
		return errPageDenied
	}

	refresh := len(args) > 0 && args[0] == "refresh"
	if err := load(ctx, a, a.deposits, refresh); err != nil {
		return a.report(ctx, err)
	}
	if err := load(ctx, a, a.spins, refresh); err != nil {
		return a.report(ctx, err)
	}

	now := a.now()
	deps, spins := a.deposits.Snapshot(), a.spins.Snapshot()
	rows := make([][]string, 0, len(filter.Ranges()))
	for _, r := range filter.Ranges() {
		approved := filter.Summarize(filter.View(deps, filter.Criteria{Range: r, Status: models.DepositApproved}, now))
		pending := filter.Summarize(filter.View(deps, filter.Criteria{Range: r, Status: models.DepositPending}, now))
		bets := filter.Summarize(filter.View(spins, filter.Criteria{Range: r}, now))
		rows = append(rows, []string{
			r.Label(),
			render.Count(approved.Count), render.Amount(approved.Amount),
			render.Count(pending.Count), render.Amount(pending.Amount),
			render.Count(bets.Count), render.Amount(bets.Amount),
		})
	}
	return render.Table(a.out, []string{"Range", "Approved", "Approved ₹", "Pending", "Pending ₹", "Spins", "Wagered"}, rows)
}

func (a *App) Users(ctx context.Context, args []string) error {
	users, err := listView(ctx, a, session.PathUsers, a.users, args, titleCase)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.ID, u.Name, u.Email, u.Mobile, render.Amount(u.Wallet), u.StatusValue(), render.Time(u.CreatedAt)})
	}
	a.summary("Users", filter.Summarize(users))
	return render.Table(a.out, []string{"ID", "Name", "Email", "Mobile", "Wallet", "Status", "Joined"}, rows)
}

func (a *App) Deposits(ctx context.Context, args []string) error {
	deps, err := listView(ctx, a, session.PathDeposits, a.deposits, args, normalize.DepositStatus)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(deps))
	for _, d := range deps {
		rows = append(rows, []string{
			d.ID, d.TransactionID, d.Name, d.Mobile, render.Amount(d.Amount), d.Status,
			strconv.Itoa(d.TotalDeposits), render.Amount(d.Lifetime), render.Time(d.CreatedAt),
		})
	}
	a.summary("Deposits", filter.Summarize(deps))
	return render.Table(a.out, []string{"ID", "Txn", "Name", "Mobile", "Amount", "Status", "Count", "Lifetime", "Created"}, rows)
}

func (a *App) Spins(ctx context.Context, args []string) error {
	spins, err := listView(ctx, a, session.PathSpins, a.spins, args, normalize.SpinResult)
	if err != nil {
		return err
	}
	a.summary("Spins", filter.Summarize(spins))
	return a.spinTable(spins)
}

func (a *App) spinTable(spins []models.Spin) error {
	rows := make([][]string, 0, len(spins))
	for _, s := range spins {
		rows = append(rows, []string{
			s.ID, s.UserName, s.Mobile, render.Amount(s.Amount), s.Result, s.Multiplier,
			render.Amount(s.WinAmount), render.Amount(s.WalletAfterSpin), render.Time(s.Timestamp),
		})
	}
	return render.Table(a.out, []string{"ID", "User", "Mobile", "Bet", "Result", "Multiplier", "Win", "Wallet", "Time"}, rows)
}

func (a *App) UPIs(ctx context.Context, args []string) error {
	upis, err := listView(ctx, a, session.PathUPI, a.upis, args, nil)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(upis))
	for _, u := range upis {
		rows = append(rows, []string{u.ID, u.UPI, u.Bank, u.UserName, u.Mobile, u.Reference, render.Time(u.CreatedAt)})
	}
	fmt.Fprintf(a.out, "UPI entries: %s\n", render.Count(len(upis)))
	return render.Table(a.out, []string{"ID", "UPI", "Bank", "Name", "Mobile", "Reference", "Added"}, rows)
}

func (a *App) Executives(ctx context.Context, args []string) error {
	execs, err := listView(ctx, a, session.PathEmployee, a.execs, args, titleCase)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(execs))
	for _, e := range execs {
		rows = append(rows, []string{e.ID, e.Name, e.Email, e.Mobile, e.Designation, e.Permission, e.StatusValue()})
	}
	fmt.Fprintf(a.out, "Executives: %s\n", render.Count(len(execs)))
	return render.Table(a.out, []string{"ID", "Name", "Email", "Mobile", "Designation", "Permission", "Status"}, rows)
}

func (a *App) Chats(ctx context.Context, args []string) error {
	chats, err := listView(ctx, a, session.PathChat, a.chats, args, nil)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(chats))
	for _, c := range chats {
		rows = append(rows, []string{c.ID, c.UserName, c.Mobile, strconv.Itoa(len(c.Messages)), c.LastMessage(), render.Time(c.LastActivity)})
	}
	return render.Table(a.out, []string{"ID", "User", "Mobile", "Messages", "Last message", "Last activity"}, rows)
}

// Chat prints one thread in full.
func (a *App) Chat(ctx context.Context, args []string) error {
	if !a.allowed(session.PathChat) {
		return errPageDenied
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: chat <id>")
		return errUsage
	}
	if err := load(ctx, a, a.chats, false); err != nil {
		return a.report(ctx, err)
	}

	th, ok := a.chats.Get(args[0])
	if !ok {
		fmt.Fprintf(a.out, "No chat with id %s.\n", args[0])
		return errNotFound
	}

	fmt.Fprintf(a.out, "%s (%s)\n", th.UserName, th.Mobile)
	for _, m := range th.Messages {
		fmt.Fprintf(a.out, "[%s] %s: %s\n", render.Time(m.Timestamp), m.Sender, m.Text)
	}
	return nil
}

func (a *App) Nav(context.Context) error {
	for _, e := range a.gate.Nav() {
		fmt.Fprintf(a.out, "%-16s %s\n", e.Path, e.Name)
	}
	return nil
}

// Refresh reloads one resource, bypassing the cache.
func (a *App) Refresh(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: refresh <dashboard|users|deposits|spins|upis|execs|chats>")
		return errUsage
	}

	var err error
	switch args[0] {
	case "dashboard":
		_, err = a.dashboard.Refresh(ctx)
	case "users":
		err = a.users.Refresh(ctx)
	case "deposits":
		err = a.deposits.Refresh(ctx)
	case "spins", "bets":
		err = a.spins.Refresh(ctx)
	case "upis":
		err = a.upis.Refresh(ctx)
	case "execs":
		if !a.allowed(session.PathEmployee) {
			return errPageDenied
		}
		err = a.execs.Refresh(ctx)
	case "chats":
		err = a.chats.Refresh(ctx)
	default:
		fmt.Fprintln(a.out, "Unknown resource:", args[0])
		return errUsage
	}
	if err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Refreshed", args[0]+".")
	return nil
}
