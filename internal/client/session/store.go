// Package session holds the authenticated user's bearer token and profile,
// keeping the in-memory copy and the durable settings store in step: token
// and user are always set or cleared together, within the same call.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/champsapp/champs-cli/internal/client/api"
	"github.com/champsapp/champs-cli/internal/client/models"
	"github.com/champsapp/champs-cli/internal/client/storage"
	"github.com/champsapp/champs-cli/internal/dbx"
	"github.com/champsapp/champs-cli/internal/logging"
)

// Store is the single process-wide session. It satisfies api.TokenSource,
// so the HTTP facade reads the token straight from here.
type Store struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger

	token string
	user  *models.User
}

var _ api.TokenSource = (*Store)(nil)

func NewStore(client api.Client, db *sql.DB, log logging.Logger) *Store {
	return &Store{client: client, db: db, log: log.With("component", "session")}
}

// Restore loads a previously persisted session, if any. A half-present
// session (token without user or vice versa) counts as logged out.
func (s *Store) Restore(ctx context.Context) error {
	repo := storage.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, storage.KeyToken)
	if err != nil {
		return err
	}
	rawUser, err := repo.Get(ctx, storage.KeyUser)
	if err != nil {
		return err
	}
	if len(token) == 0 || len(rawUser) == 0 {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		s.log.Warn(ctx, "stored user profile unreadable, ignoring session", "error", err)
		return nil
	}

	s.token = string(token)
	s.user = &user
	return nil
}

// Login authenticates against the backend and persists the session.
// Expected failures (wrong credentials, unreachable server) come back as
// ordinary error values carrying a human-readable message.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.adopt(ctx, resp)
}

// Register creates an account and logs the new user in, same contract as
// Login.
func (s *Store) Register(ctx context.Context, username, email, password string) error {
	resp, err := s.client.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	return s.adopt(ctx, resp)
}

// adopt persists the token+user pair and only then updates the in-memory
// state, so a storage failure never leaves the two halves disagreeing.
func (s *Store) adopt(ctx context.Context, resp *models.AuthResponse) error {
	if resp.Token == "" || resp.User == nil {
		return fmt.Errorf("auth response missing token or user")
	}

	rawUser, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("encoding user profile: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, storage.KeyToken, []byte(resp.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, storage.KeyUser, rawUser)
	})
	if err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	s.token = resp.Token
	s.user = resp.User
	s.log.Info(ctx, "session established", "user", resp.User.Username)
	return nil
}

// Logout clears the token, user profile and current tournament pointer in a
// single transaction, then drops the in-memory session.
func (s *Store) Logout(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		for _, key := range []string{storage.KeyToken, storage.KeyUser, storage.KeyCurrentTournamentID} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	s.token = ""
	s.user = nil
	s.log.Info(ctx, "logged out")
	return nil
}

// IsLoggedIn reports whether a token is present.
func (s *Store) IsLoggedIn() bool {
	return s.token != ""
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	return s.token
}

// User returns the current user's profile, or nil when logged out.
func (s *Store) User() *models.User {
	return s.user
}
