// Package tournament maintains the client's single "current tournament":
// an in-memory cached record plus the persisted identifier saying which
// tournament that is. After every successful mutation the persisted id and
// the cached record agree; failures leave the last-known-good state alone.
package tournament

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/champsapp/champs-cli/internal/client/api"
	"github.com/champsapp/champs-cli/internal/client/models"
	"github.com/champsapp/champs-cli/internal/client/storage"
	"github.com/champsapp/champs-cli/internal/logging"
)

// Cache owns the current tournament. OnChange, when set, is invoked after
// every successful change so the UI can re-render; it receives nil when the
// cache empties.
type Cache struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger

	current  *models.Tournament
	OnChange func(*models.Tournament)
}

func NewCache(client api.Client, db *sql.DB, log logging.Logger) *Cache {
	return &Cache{client: client, db: db, log: log.With("component", "tournament")}
}

// Current returns the cached tournament, or nil when none is selected.
func (c *Cache) Current() *models.Tournament {
	return c.current
}

func (c *Cache) notify() {
	if c.OnChange != nil {
		c.OnChange(c.current)
	}
}

// adopt persists the tournament's identifier, then replaces the cache.
// Ordering matters: a persistence failure must not leave the cache pointing
// at a tournament whose id was never stored.
func (c *Cache) adopt(ctx context.Context, t *models.Tournament) error {
	repo := storage.NewSQLiteRepository(c.db)
	if err := repo.Set(ctx, storage.KeyCurrentTournamentID, []byte(t.ID)); err != nil {
		return fmt.Errorf("persisting current tournament id: %w", err)
	}
	c.current = t
	c.notify()
	return nil
}

// Create submits a creation request and makes the new tournament current.
func (c *Cache) Create(ctx context.Context, req *models.CreateTournamentRequest) (*models.Tournament, error) {
	t, err := c.client.CreateTournament(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := c.adopt(ctx, t); err != nil {
		return nil, err
	}
	c.log.Info(ctx, "tournament created", "id", t.ID, "name", t.Name, "teams", len(t.Teams))
	return t, nil
}

// Load fetches a tournament by id and makes it current.
func (c *Cache) Load(ctx context.Context, id string) (*models.Tournament, error) {
	t, err := c.client.GetTournament(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading tournament: %w", err)
	}
	if err := c.adopt(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListMine fetches the user's tournaments. List views degrade gracefully:
// any failure logs a warning and yields an empty sequence instead of an
// error.
func (c *Cache) ListMine(ctx context.Context) []*models.Tournament {
	list, err := c.client.ListTournaments(ctx)
	if err != nil {
		c.log.Warn(ctx, "listing tournaments failed", "error", err)
		return nil
	}
	return list
}

// Refresh reloads the tournament named by the persisted identifier.
// Without a persisted identifier it is a no-op returning nil.
func (c *Cache) Refresh(ctx context.Context) (*models.Tournament, error) {
	repo := storage.NewSQLiteRepository(c.db)
	id, err := repo.Get(ctx, storage.KeyCurrentTournamentID)
	if err != nil {
		return nil, err
	}
	if len(id) == 0 {
		return nil, nil
	}
	return c.Load(ctx, string(id))
}

// Initialize selects the startup tournament: the persisted identifier when
// it still appears in the user's list, else the first listed tournament,
// else nothing — in which case a stale persisted identifier is cleared.
func (c *Cache) Initialize(ctx context.Context) error {
	list := c.ListMine(ctx)
	repo := storage.NewSQLiteRepository(c.db)

	if len(list) == 0 {
		if err := repo.Delete(ctx, storage.KeyCurrentTournamentID); err != nil {
			return err
		}
		c.current = nil
		c.notify()
		return nil
	}

	persisted, err := repo.Get(ctx, storage.KeyCurrentTournamentID)
	if err != nil {
		return err
	}

	id := list[0].ID
	for _, t := range list {
		if t.ID == string(persisted) {
			id = t.ID
			break
		}
	}

	_, err = c.Load(ctx, id)
	return err
}

// SaveMatchResult reports a group-stage match score for the current
// tournament and replaces the cache with the updated record.
func (c *Cache) SaveMatchResult(ctx context.Context, result *models.MatchResult) (*models.Tournament, error) {
	if c.current == nil {
		return nil, fmt.Errorf("no tournament selected")
	}
	t, err := c.client.SaveMatchResult(ctx, c.current.ID, result)
	if err != nil {
		return nil, err
	}
	if err := c.adopt(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// SavePlayoffResult reports a playoff match score, same contract as
// SaveMatchResult.
func (c *Cache) SavePlayoffResult(ctx context.Context, result *models.MatchResult) (*models.Tournament, error) {
	if c.current == nil {
		return nil, fmt.Errorf("no tournament selected")
	}
	t, err := c.client.SavePlayoffResult(ctx, c.current.ID, result)
	if err != nil {
		return nil, err
	}
	if err := c.adopt(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
