package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/spinadmin/internal/client/models"
	"github.com/dmitrijs2005/spinadmin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/spinadmin/internal/common"
	"github.com/dmitrijs2005/spinadmin/internal/dbx"
)

type Session struct {
	Token string
	Role  models.Role
}

func (s Session) Empty() bool { return s.Token == "" }

// Store keeps the session in the metadata table: one token slot per role
// plus the selected role.
type Store struct {
	db   *sql.DB
	repo metadata.Repository
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, repo: metadata.NewSQLiteRepository(db)}
}

func tokenKey(r models.Role) string {
	if r == models.RoleExecutive {
		return common.ExecutiveTokenKey
	}
	return common.AdminTokenKey
}

// Save writes the token into its role's slot and records the role. The
// other slot is cleared so only one login is ever active.
func (s *Store) Save(ctx context.Context, sess Session) error {
	if sess.Token == "" {
		return fmt.Errorf("save session: empty token")
	}
	if _, err := models.ParseRole(string(sess.Role)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	other := models.RoleExecutive
	if sess.Role == models.RoleExecutive {
		other = models.RoleAdmin
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, tokenKey(sess.Role), []byte(sess.Token)); err != nil {
			return err
		}
		if err := repo.Delete(ctx, tokenKey(other)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserRoleKey, []byte(sess.Role))
	})
}

// Current prefers the admin slot over the executive one. An empty Session
// means nobody is logged in.
func (s *Store) Current(ctx context.Context) (Session, error) {
	for _, role := range []models.Role{models.RoleAdmin, models.RoleExecutive} {
		tok, err := s.repo.Get(ctx, tokenKey(role))
		if err != nil {
			return Session{}, fmt.Errorf("read session: %w", err)
		}
		if len(tok) > 0 {
			return Session{Token: string(tok), Role: role}, nil
		}
	}
	return Session{}, nil
}

// Clear wipes every persisted session key.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, k := range []string{common.AdminTokenKey, common.ExecutiveTokenKey, common.UserRoleKey} {
			if err := repo.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
}
