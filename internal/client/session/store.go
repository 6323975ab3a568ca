// Package session persists the authenticated (token, user) pair in the local
// key-value store.
//
// The token lives under TokenKey as a raw string, the user under UserKey as
// JSON. Both keys are written and removed in one transaction, so a session
// is never half-stored. Load still treats a lone key as "no session".
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/learninghub/internal/client/models"
	"github.com/dmitrijs2005/learninghub/internal/client/repositories/kv"
	"github.com/dmitrijs2005/learninghub/internal/dbx"
)

const (
	TokenKey = "@auth_token"
	UserKey  = "@auth_user"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save writes token and user together.
func (s *Store) Save(ctx context.Context, token string, user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, TokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, UserKey, payload)
	})
}

// Load returns the stored session, or nil when either key is missing or the
// user record is not valid JSON.
func (s *Store) Load(ctx context.Context) (*models.Session, error) {
	repo := kv.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, TokenKey)
	if err != nil {
		return nil, err
	}
	raw, err := repo.Get(ctx, UserKey)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 || len(raw) == 0 {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, nil
	}
	return &models.Session{Token: string(token), User: user}, nil
}

// Clear removes both keys. Clearing an empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, TokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, UserKey)
	})
}
