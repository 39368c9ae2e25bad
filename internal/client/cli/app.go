package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/champsapp/champs-cli/internal/client/api"
	"github.com/champsapp/champs-cli/internal/client/config"
	"github.com/champsapp/champs-cli/internal/client/models"
	"github.com/champsapp/champs-cli/internal/client/session"
	"github.com/champsapp/champs-cli/internal/client/storage"
	"github.com/champsapp/champs-cli/internal/client/tournament"
	"github.com/champsapp/champs-cli/internal/logging"
)

// App wires the client together: config, local database, HTTP client,
// session store and tournament cache. Command handlers live on this type.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Store
	cache   *tournament.Cache

	theme  string
	styles Styles
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local database: %w", err)
	}

	baseURL, err := c.ResolveBaseURL()
	if err != nil {
		return nil, err
	}

	// The HTTP client reads the token through a func so it can be built
	// before the session store that owns the token.
	var sess *session.Store
	apiClient := api.NewHTTPClient(baseURL, api.TokenFunc(func() string { return sess.Token() }), log)
	sess = session.NewStore(apiClient, db, log)

	cache := tournament.NewCache(apiClient, db, log)

	a := &App{
		config:  c,
		log:     log,
		db:      db,
		session: sess,
		cache:   cache,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	a.theme = a.loadTheme(ctx)
	a.styles = NewStyles(a.theme)

	// Downstream refresh hook: whenever the current tournament changes the
	// user sees which record the dashboard now reflects.
	cache.OnChange = func(t *models.Tournament) {
		if t != nil {
			a.notify("current tournament: " + t.Name)
		}
	}
	return a, nil
}

// Run restores any persisted session, initializes the tournament cache and
// enters the REPL.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Restore(ctx); err != nil {
		return err
	}

	if a.session.IsLoggedIn() {
		if err := a.cache.Initialize(ctx); err != nil {
			// Startup must survive a dead backend; the user can refresh later.
			a.notifyError(err)
		}
	}

	a.Root(ctx)
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

// notify prints a transient user-facing message.
func (a *App) notify(msg string) {
	fmt.Fprintln(a.out, a.styles.Notice.Render(msg))
}

func (a *App) notifyError(err error) {
	fmt.Fprintln(a.out, a.styles.Error.Render(err.Error()))
}
