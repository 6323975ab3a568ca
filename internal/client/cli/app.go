package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/learninghub/internal/client/auth"
	"github.com/dmitrijs2005/learninghub/internal/client/client"
	"github.com/dmitrijs2005/learninghub/internal/client/config"
	"github.com/dmitrijs2005/learninghub/internal/client/repositories/kv"
	"github.com/dmitrijs2005/learninghub/internal/client/services"
	"github.com/dmitrijs2005/learninghub/internal/client/session"
	"github.com/dmitrijs2005/learninghub/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	manager  *auth.Manager
	settings services.SettingsService
	notes    services.NotesService
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the store, picks the auth backend and wires the services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.StorePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.StorePath, "error", err)
		return nil, err
	}

	backend, err := newBackend(c, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	repo := kv.NewSQLiteRepository(db)
	authService := services.NewAuthService(backend, session.NewStore(db))

	return &App{
		config:   c,
		log:      log,
		db:       db,
		manager:  auth.NewManager(authService, log.With("component", "auth")),
		settings: services.NewSettingsService(repo, log.With("component", "settings")),
		notes:    services.NewNotesService(repo),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func newBackend(c *config.Config, db *sql.DB) (client.Client, error) {
	switch c.Backend {
	case config.BackendMock:
		return client.NewMockClient(c.Latency), nil
	case config.BackendLocal:
		lc, err := client.NewLocalClient(db, c.TokenSecret, c.TokenTTL, client.WithLatency(c.Latency))
		if err != nil {
			return nil, err
		}
		return lc, nil
	default:
		return nil, fmt.Errorf("%w: %q", client.ErrUnknownBackend, c.Backend)
	}
}

// Run attaches the session manager to ctx and blocks in the REPL until the
// user exits, input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	return a.Root(auth.WithManager(ctx, a.manager))
}

func (a *App) println(args ...any) {
	_, _ = fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
