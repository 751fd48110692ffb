package services

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/dmitrijs2005/spinadmin/internal/client/client"
	"github.com/dmitrijs2005/spinadmin/internal/client/models"
	"github.com/dmitrijs2005/spinadmin/internal/client/repositories/cache"
	"github.com/dmitrijs2005/spinadmin/internal/client/store"
	"github.com/dmitrijs2005/spinadmin/internal/logging"
	"golang.org/x/sync/errgroup"
)

const recentSpinsLimit = 20

type DashboardService interface {
	// Get serves a fresh cached dashboard when one exists.
	Get(ctx context.Context) (models.Dashboard, error)
	Refresh(ctx context.Context) (models.Dashboard, error)
}

type dashboardService struct {
	client   client.Client
	cache    cache.Repository
	cacheKey string
	maxAge   time.Duration
	now      func() time.Time
	log      logging.Logger
}

func NewDashboardService(c client.Client, cacheRepo cache.Repository, cacheKey string, maxAge time.Duration, log logging.Logger) DashboardService {
	if maxAge <= 0 {
		maxAge = store.DefaultMaxAge
	}
	return &dashboardService{
		client:   c,
		cache:    cacheRepo,
		cacheKey: cacheKey + ":dashboard",
		maxAge:   maxAge,
		now:      time.Now,
		log:      log,
	}
}

func (d *dashboardService) Get(ctx context.Context) (models.Dashboard, error) {
	if dash, ok := d.cached(ctx); ok {
		return dash, nil
	}
	return d.Refresh(ctx)
}

func (d *dashboardService) cached(ctx context.Context) (models.Dashboard, bool) {
	env, err := d.cache.Get(ctx, d.cacheKey)
	if err != nil {
		d.log.Warn(ctx, "read dashboard cache", "error", err)
		return models.Dashboard{}, false
	}
	if env == nil || !store.Fresh(env.CapturedAt, d.now(), d.maxAge) {
		return models.Dashboard{}, false
	}

	var dash models.Dashboard
	if err := json.Unmarshal(env.Payload, &dash); err != nil || dash.Stats == nil || dash.RecentSpins == nil {
		return models.Dashboard{}, false
	}
	dash.CapturedAt = env.CapturedAt
	return dash, true
}

func (d *dashboardService) Refresh(ctx context.Context) (models.Dashboard, error) {
	var (
		users    []models.User
		deposits []models.Deposit
		spins    []models.Spin
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { users, err = d.client.ListUsers(gctx); return err })
	g.Go(func() (err error) { deposits, err = d.client.ListDeposits(gctx); return err })
	g.Go(func() (err error) { spins, err = d.client.ListSpins(gctx); return err })
	if err := g.Wait(); err != nil {
		d.log.Error(ctx, "dashboard fetch failed", "error", err)
		return models.Dashboard{}, err
	}

	dash := BuildDashboard(users, deposits, spins)
	dash.CapturedAt = d.now()

	if payload, err := json.Marshal(dash); err == nil {
		if err := d.cache.Put(ctx, cache.Envelope{Key: d.cacheKey, Payload: payload, CapturedAt: dash.CapturedAt}); err != nil {
			d.log.Warn(ctx, "write dashboard cache", "error", err)
		}
	}
	return dash, nil
}

// BuildDashboard aggregates the summary cards. Only approved deposits count
// towards the deposit total.
func BuildDashboard(users []models.User, deposits []models.Deposit, spins []models.Spin) models.Dashboard {
	stats := &models.DashboardStats{
		TotalUsers: len(users),
		TotalSpins: len(spins),
	}
	for _, dep := range deposits {
		if dep.Status == models.DepositApproved {
			stats.TotalDeposits += dep.Amount
		}
	}
	for _, s := range spins {
		stats.TotalWinnings += s.WinAmount
	}

	recent := slices.Clone(spins)
	slices.SortStableFunc(recent, func(a, b models.Spin) int { return b.Timestamp.Compare(a.Timestamp) })
	if len(recent) > recentSpinsLimit {
		recent = recent[:recentSpinsLimit]
	}
	if recent == nil {
		recent = []models.Spin{}
	}

	return models.Dashboard{Stats: stats, RecentSpins: recent}
}
