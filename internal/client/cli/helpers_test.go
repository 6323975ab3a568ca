package cli

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/learninghub/internal/client/auth"
	"github.com/dmitrijs2005/learninghub/internal/client/client"
	"github.com/dmitrijs2005/learninghub/internal/client/config"
	"github.com/dmitrijs2005/learninghub/internal/client/models"
	"github.com/dmitrijs2005/learninghub/internal/client/repositories/kv"
	"github.com/dmitrijs2005/learninghub/internal/client/services"
	"github.com/dmitrijs2005/learninghub/internal/client/session"
	"github.com/dmitrijs2005/learninghub/internal/logging"
	"github.com/stretchr/testify/require"
)

// countingAuth wraps a real AuthService and counts backend calls.
type countingAuth struct {
	services.AuthService

	signIns int
	signUps int
	err     error
}

func (c *countingAuth) SignIn(ctx context.Context, creds models.SignInCredentials) (*models.AuthResponse, error) {
	c.signIns++
	if c.err != nil {
		return nil, c.err
	}
	return c.AuthService.SignIn(ctx, creds)
}

func (c *countingAuth) SignUp(ctx context.Context, creds models.SignUpCredentials) (*models.AuthResponse, error) {
	c.signUps++
	if c.err != nil {
		return nil, c.err
	}
	return c.AuthService.SignUp(ctx, creds)
}

type testEnv struct {
	app   *App
	ctx   context.Context
	out   *bytes.Buffer
	svc   *countingAuth
	store *session.Store
}

// newTestEnv builds an App over a temp store and the mock backend, reading
// commands from input. The manager is already restored.
func newTestEnv(t *testing.T, input string) *testEnv {
	t.Helper()

	origTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	ctx := context.Background()
	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "hub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := session.NewStore(db)
	svc := &countingAuth{AuthService: services.NewAuthService(client.NewMockClient(0), store)}
	repo := kv.NewSQLiteRepository(db)
	m := auth.NewManager(svc, logging.Discard())

	cfg := &config.Config{}
	cfg.LoadDefaults()

	out := &bytes.Buffer{}
	app := &App{
		config:   cfg,
		log:      logging.Discard(),
		manager:  m,
		settings: services.NewSettingsService(repo, logging.Discard()),
		notes:    services.NewNotesService(repo),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      out,
	}

	m.Restore(ctx)
	return &testEnv{app: app, ctx: auth.WithManager(ctx, m), out: out, svc: svc, store: store}
}

func (e *testEnv) signIn(t *testing.T) {
	t.Helper()
	err := e.app.manager.SignIn(e.ctx, models.SignInCredentials{Email: "test@example.com", Password: "password123"})
	require.NoError(t, err)
}

func (e *testEnv) run(t *testing.T) string {
	t.Helper()
	require.NoError(t, runREPL(e.ctx, e.app))
	return e.out.String()
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}
