package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/learninghub/internal/client/client"
	"github.com/dmitrijs2005/learninghub/internal/client/repositories/kv"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *kv.SQLiteRepository {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "hub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return kv.NewSQLiteRepository(db)
}

// failingRepo fails every call with err.
type failingRepo struct{ err error }

func (f failingRepo) Get(context.Context, string) ([]byte, error)     { return nil, f.err }
func (f failingRepo) Set(context.Context, string, []byte) error       { return f.err }
func (f failingRepo) Delete(context.Context, string) error            { return f.err }
func (f failingRepo) List(context.Context) (map[string][]byte, error) { return nil, f.err }
func (f failingRepo) Clear(context.Context) error                     { return f.err }

var errBoom = errors.New("boom")
