// Package services contains the application services of the client.
// This file defines the authentication service: credential checks through
// the backend client plus persistence of the resulting session.
package services

import (
	"context"

	"github.com/dmitrijs2005/learninghub/internal/client/client"
	"github.com/dmitrijs2005/learninghub/internal/client/models"
)

// AuthService is the service surface consumed by the session manager.
//
// Contract:
//   - SignIn / SignUp: ask the backend for a user and token; nothing is stored.
//   - SaveSession: persist token and user together (*models.StorageError on failure).
//   - GetSession: the stored session, or nil when there is none or it is
//     incomplete. A failed read is returned as *models.StorageError rather
//     than nil; callers restoring on startup treat it as "no session".
//   - ClearSession: drop both session keys; idempotent.
//   - SignOut: ClearSession with no other side effects.
type AuthService interface {
	SignIn(ctx context.Context, creds models.SignInCredentials) (*models.AuthResponse, error)
	SignUp(ctx context.Context, creds models.SignUpCredentials) (*models.AuthResponse, error)
	SaveSession(ctx context.Context, token string, user models.User) error
	GetSession(ctx context.Context) (*models.Session, error)
	ClearSession(ctx context.Context) error
	SignOut(ctx context.Context) error
}

// SessionStore persists the session pair. Implemented by *session.Store.
type SessionStore interface {
	Save(ctx context.Context, token string, user models.User) error
	Load(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  SessionStore
}

func NewAuthService(c client.Client, store SessionStore) AuthService {
	return &authService{client: c, store: store}
}

func (a *authService) SignIn(ctx context.Context, creds models.SignInCredentials) (*models.AuthResponse, error) {
	return a.client.SignIn(ctx, creds)
}

func (a *authService) SignUp(ctx context.Context, creds models.SignUpCredentials) (*models.AuthResponse, error) {
	return a.client.SignUp(ctx, creds)
}

func (a *authService) SaveSession(ctx context.Context, token string, user models.User) error {
	if err := a.store.Save(ctx, token, user); err != nil {
		return &models.StorageError{Op: "save", Err: err}
	}
	return nil
}

func (a *authService) GetSession(ctx context.Context) (*models.Session, error) {
	s, err := a.store.Load(ctx)
	if err != nil {
		return nil, &models.StorageError{Op: "load", Err: err}
	}
	return s, nil
}

func (a *authService) ClearSession(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return &models.StorageError{Op: "clear", Err: err}
	}
	return nil
}

func (a *authService) SignOut(ctx context.Context) error {
	return a.ClearSession(ctx)
}
