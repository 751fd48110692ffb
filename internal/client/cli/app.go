package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/spinadmin/internal/client/client"
	"github.com/dmitrijs2005/spinadmin/internal/client/commands"
	"github.com/dmitrijs2005/spinadmin/internal/client/config"
	"github.com/dmitrijs2005/spinadmin/internal/client/models"
	"github.com/dmitrijs2005/spinadmin/internal/client/repositories/cache"
	"github.com/dmitrijs2005/spinadmin/internal/client/services"
	"github.com/dmitrijs2005/spinadmin/internal/client/session"
	"github.com/dmitrijs2005/spinadmin/internal/client/store"
	"github.com/dmitrijs2005/spinadmin/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	api       client.Client
	gate      *session.Gate
	cache     cache.Repository
	auth      services.AuthService
	dashboard services.DashboardService

	users     *store.Store[models.User]
	deposits  *store.Store[models.Deposit]
	spins     *store.Store[models.Spin]
	upis      *store.Store[models.UpiEntry]
	execs     *store.Store[models.Executive]
	chats     *store.Store[models.ChatThread]
	userCmds  *commands.Runner[models.User]
	depCmds   *commands.Runner[models.Deposit]
	upiCmds   *commands.Runner[models.UpiEntry]
	execCmds  *commands.Runner[models.Executive]
	chatCmds  *commands.Runner[models.ChatThread]
}

// NewApp opens the local database, restores any saved session and builds
// the REST client around it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	gate := session.NewGate(session.NewStore(db))
	if err := gate.Restore(ctx); err != nil {
		db.Close()
		return nil, err
	}

	api, err := client.NewHTTPClient(c.BaseURL, client.WithSession(gate), client.WithLogger(log))
	if err != nil {
		db.Close()
		return nil, err
	}

	a := newApp(c, api, gate, cache.NewSQLiteRepository(db), log, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, api client.Client, gate *session.Gate, cacheRepo cache.Repository,
	log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
		now:    time.Now,
		api:    api,
		gate:   gate,
		cache:  cacheRepo,
	}
	a.auth = services.NewAuthService(api, gate, cacheRepo, log)
	a.dashboard = services.NewDashboardService(api, cacheRepo, c.CacheKey, c.CacheMaxAge, log)

	a.users = newStore(a, "users", api.ListUsers)
	a.deposits = newStore(a, "deposits", api.ListDeposits)
	a.spins = newStore(a, "spins", api.ListSpins)
	a.upis = newStore(a, "upis", api.ListUPIs)
	a.execs = newStore(a, "executives", api.ListExecutives)
	a.chats = newStore(a, "chats", api.ListChats)

	a.userCmds = commands.NewRunner(a.users, api, c.RequestTimeout, log)
	a.depCmds = commands.NewRunner(a.deposits, api, c.RequestTimeout, log)
	a.upiCmds = commands.NewRunner(a.upis, api, c.RequestTimeout, log)
	a.execCmds = commands.NewRunner(a.execs, api, c.RequestTimeout, log)
	a.chatCmds = commands.NewRunner(a.chats, api, c.RequestTimeout, log)
	return a
}

func newStore[T models.Record](a *App, name string, fetch store.FetchFunc[T]) *store.Store[T] {
	return store.New(name, fetch,
		store.WithCache[T](a.cache, a.config.CacheKey+":"+name),
		store.WithMaxAge[T](a.config.CacheMaxAge),
		store.WithLogger[T](a.log),
		store.WithClock[T](func() time.Time { return a.now() }),
	)
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	if a.db != nil {
		defer a.db.Close()
	}

	fmt.Fprintf(a.out, "Welcome to %s (type 'help' for commands)\n", a.config.Title)
	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
}

type invalidator interface {
	Name() string
	Invalidate(ctx context.Context) error
}

// forget drops every collection held in memory so the next operator starts
// from the backend.
func (a *App) forget(ctx context.Context) {
	for _, s := range []invalidator{a.users, a.deposits, a.spins, a.upis, a.execs, a.chats} {
		if err := s.Invalidate(ctx); err != nil {
			a.log.Warn(ctx, "invalidate store", "store", s.Name(), "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.gate.IsAuthenticated()
}

func (a *App) status() string {
	s := a.config.Title
	if a.isLoggedIn() {
		s += " " + string(a.gate.Role())
	}
	return fmt.Sprintf("(%s)", s)
}
