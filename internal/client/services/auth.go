// Package services contains the application services behind the CLI
// commands: authentication and the cached dashboard.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/spinadmin/internal/client/client"
	"github.com/dmitrijs2005/spinadmin/internal/client/models"
	"github.com/dmitrijs2005/spinadmin/internal/client/repositories/cache"
	"github.com/dmitrijs2005/spinadmin/internal/client/session"
	"github.com/dmitrijs2005/spinadmin/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the backend for the chosen role and persist
//     the session.
//   - Signup: create an admin or executive account; it does not log in.
//   - Logout: forget the session and every cached collection.
//   - Me: fetch the logged-in admin's profile.
type AuthService interface {
	Login(ctx context.Context, role models.Role, email, password string) error
	Signup(ctx context.Context, role models.Role, req models.SignupRequest) error
	Logout(ctx context.Context) error
	Current() session.Session
	Me(ctx context.Context) (models.AdminIdentity, error)
}

type authService struct {
	client client.Client
	gate   *session.Gate
	cache  cache.Repository
	log    logging.Logger
}

func NewAuthService(c client.Client, gate *session.Gate, cacheRepo cache.Repository, log logging.Logger) AuthService {
	return &authService{client: c, gate: gate, cache: cacheRepo, log: log}
}

func (a *authService) Login(ctx context.Context, role models.Role, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", client.ErrValidation)
	}

	token, err := a.client.Login(ctx, role, email, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.gate.Login(ctx, session.Session{Token: token, Role: role}); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	a.log.Info(ctx, "logged in", "role", role)
	return nil
}

func (a *authService) Signup(ctx context.Context, role models.Role, req models.SignupRequest) error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", req.Name}, {"email", req.Email}, {"mobile", req.Mobile}, {"password", req.Password},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", client.ErrValidation, strings.Join(missing, ", "))
	}

	return a.client.Signup(ctx, role, req)
}

// Logout clears the session even if wiping the cache fails.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.gate.Logout(ctx); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	if err := a.cache.Clear(ctx); err != nil {
		return fmt.Errorf("cache clearing error: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) Current() session.Session {
	return a.gate.Current()
}

func (a *authService) Me(ctx context.Context) (models.AdminIdentity, error) {
	return a.client.Me(ctx)
}
