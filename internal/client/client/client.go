package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/learninghub/internal/client/models"
)

// Client is the authentication backend seam. The services layer only talks
// to this interface, so the mock can be swapped for a real backend without
// touching callers.
type Client interface {
	SignIn(ctx context.Context, creds models.SignInCredentials) (*models.AuthResponse, error)
	SignUp(ctx context.Context, creds models.SignUpCredentials) (*models.AuthResponse, error)
}

// simulateLatency blocks for d or until ctx is done.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
