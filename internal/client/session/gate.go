package session

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/spinadmin/internal/client/models"
	"github.com/dmitrijs2005/spinadmin/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

const (
	PathLogin     = "/login"
	PathDashboard = "/"
	PathUsers     = "/user"
	PathDeposits  = "/deposit"
	PathAnalytics = "/analytics"
	PathChat      = "/chat"
	PathSpins     = "/bethistory"
	PathUPI       = "/upimanagement"
	PathEmployee  = "/employee"
)

type NavEntry struct {
	Path string
	Name string
}

var navEntries = []NavEntry{
	{PathDashboard, "Dashboard"},
	{PathUsers, "User"},
	{PathDeposits, "Deposit"},
	{PathAnalytics, "Analytics"},
	{PathChat, "Chat"},
	{PathSpins, "BetHistory"},
	{PathUPI, "Upi Management"},
	{PathEmployee, "Employee"},
}

// Gate holds the active session in memory and mirrors changes to the Store.
type Gate struct {
	store *Store
	now   func() time.Time

	mu      sync.RWMutex
	current Session
}

func NewGate(store *Store) *Gate {
	return &Gate{store: store, now: time.Now}
}

// Restore loads the persisted session, if any. A session whose token has
// already expired is cleared from the store instead.
func (g *Gate) Restore(ctx context.Context) error {
	sess, err := g.store.Current(ctx)
	if err != nil {
		return err
	}
	if !sess.Empty() && errors.Is(CheckToken(sess.Token, g.now()), common.ErrTokenExpired) {
		return g.Logout(ctx)
	}
	g.set(sess)
	return nil
}

func (g *Gate) Login(ctx context.Context, sess Session) error {
	if err := g.store.Save(ctx, sess); err != nil {
		return err
	}
	g.set(sess)
	return nil
}

func (g *Gate) Logout(ctx context.Context) error {
	g.set(Session{})
	return g.store.Clear(ctx)
}

func (g *Gate) set(s Session) {
	g.mu.Lock()
	g.current = s
	g.mu.Unlock()
}

func (g *Gate) Current() Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current
}

func (g *Gate) Role() models.Role { return g.Current().Role }

// AccessToken makes the gate usable as the REST client's token source.
func (g *Gate) AccessToken() string {
	if !g.IsAuthenticated() {
		return ""
	}
	return g.Current().Token
}

// IsAuthenticated is true while a token is held and has not expired.
func (g *Gate) IsAuthenticated() bool {
	s := g.Current()
	return !s.Empty() && !Expired(s.Token, g.now())
}

// CheckToken reads the exp claim of a JWT without verifying its signature.
// Tokens that are not JWTs, or carry no exp, never expire locally.
func CheckToken(token string, now time.Time) error {
	if token == "" {
		return common.ErrInvalidToken
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if !now.Before(exp.Time) {
		return common.ErrTokenExpired
	}
	return nil
}

func Expired(token string, now time.Time) bool {
	return errors.Is(CheckToken(token, now), common.ErrTokenExpired)
}

// Nav lists the pages the current operator may open.
func (g *Gate) Nav() []NavEntry {
	role := g.Role()
	out := make([]NavEntry, 0, len(navEntries))
	for _, e := range navEntries {
		if e.Path == PathEmployee && role != models.RoleAdmin {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Resolve maps a requested path to the page actually shown. Every known page
// is reachable once logged in; Nav only decides what is listed.
func (g *Gate) Resolve(path string) string {
	if !g.IsAuthenticated() {
		return PathLogin
	}
	if path == PathLogin {
		return PathDashboard
	}
	if slices.ContainsFunc(navEntries, func(e NavEntry) bool { return e.Path == path }) {
		return path
	}
	return PathDashboard
}
