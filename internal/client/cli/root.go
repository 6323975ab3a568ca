package cli

import (
	"context"

	"github.com/dmitrijs2005/learninghub/internal/client/auth"
)

// Root restores the stored session, then runs the REPL. While the session is
// being restored only a splash line is shown.
func (a *App) Root(ctx context.Context) error {
	m := auth.FromContext(ctx)

	a.println("Welcome to LearningHub (type 'help' for commands)")
	if m.State().IsLoading {
		a.println("Loading...")
	}

	unsubscribe := m.Subscribe(func(s auth.State) {
		a.log.Debug(ctx, "auth state changed", "status", s.Status().String())
	})
	defer unsubscribe()

	go m.Restore(ctx)

	select {
	case <-m.Ready():
	case <-ctx.Done():
		return ctx.Err()
	}

	if s := m.State(); s.IsAuthenticated() {
		a.printf("Signed in as %s\n", s.User.Email)
	}

	return runREPL(ctx, a)
}

// status is the prompt decoration for the current state.
func (a *App) status(ctx context.Context) string {
	s := auth.FromContext(ctx).State()
	if s.IsAuthenticated() && s.User != nil {
		return "(" + s.User.Name + ") "
	}
	return ""
}
