package auth

import (
	"context"
	"errors"
)

// ErrNoManager is the panic value of FromContext when no Manager was attached.
var ErrNoManager = errors.New("auth: no manager in context")

type ctxKey struct{}

func WithManager(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, ctxKey{}, m)
}

// FromContext returns the Manager attached with WithManager.
// Reaching for it outside that scope is a wiring bug, so it panics.
func FromContext(ctx context.Context) *Manager {
	m, ok := ctx.Value(ctxKey{}).(*Manager)
	if !ok || m == nil {
		panic(ErrNoManager)
	}
	return m
}
