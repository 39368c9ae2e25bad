package api

import (
	"context"

	"github.com/champsapp/champs-cli/internal/client/models"
)

// TokenSource yields the current bearer token, or "" when logged out.
// The session store satisfies this interface.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts an ordinary function to the TokenSource interface.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client defines the backend operations the rest of the client depends on.
// Services take this interface so tests can substitute fakes.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error)

	CreateTournament(ctx context.Context, req *models.CreateTournamentRequest) (*models.Tournament, error)
	GetTournament(ctx context.Context, id string) (*models.Tournament, error)
	ListTournaments(ctx context.Context) ([]*models.Tournament, error)
	SaveMatchResult(ctx context.Context, id string, result *models.MatchResult) (*models.Tournament, error)
	SavePlayoffResult(ctx context.Context, id string, result *models.MatchResult) (*models.Tournament, error)
}
