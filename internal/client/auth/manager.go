// Package auth holds the application-wide authentication state.
//
// A Manager starts in the restoring state, loads any persisted session once,
// and from then on tracks sign-in, sign-up and sign-out. Views read the
// current State and subscribe to changes; navigation is derived from
// State.IsAuthenticated.
package auth

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/learninghub/internal/client/models"
	"github.com/dmitrijs2005/learninghub/internal/client/services"
	"github.com/dmitrijs2005/learninghub/internal/logging"
)

type Status int

const (
	StatusRestoring Status = iota
	StatusUnauthenticated
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusRestoring:
		return "restoring"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is a snapshot of the authentication state.
type State struct {
	User      *models.User
	Token     string
	IsLoading bool
}

func (s State) IsAuthenticated() bool {
	return s.Token != ""
}

func (s State) Status() Status {
	switch {
	case s.IsLoading:
		return StatusRestoring
	case s.IsAuthenticated():
		return StatusAuthenticated
	default:
		return StatusUnauthenticated
	}
}

type Manager struct {
	svc services.AuthService
	log logging.Logger

	mu        sync.RWMutex
	state     State
	listeners map[int]func(State)
	nextID    int

	restoreOnce sync.Once
	ready       chan struct{}
}

func NewManager(svc services.AuthService, log logging.Logger) *Manager {
	return &Manager{
		svc:       svc,
		log:       log,
		state:     State{IsLoading: true},
		listeners: make(map[int]func(State)),
		ready:     make(chan struct{}),
	}
}

// Restore loads the persisted session. Only the first call does any work;
// failures are logged and leave the user signed out.
func (m *Manager) Restore(ctx context.Context) {
	m.restoreOnce.Do(func() {
		defer close(m.ready)

		sess, err := m.svc.GetSession(ctx)
		if err != nil {
			m.log.Error(ctx, "failed to restore session", "error", err)
		}

		next := State{}
		if err == nil && sess != nil {
			user := sess.User
			next = State{User: &user, Token: sess.Token}
			m.log.Info(ctx, "session restored", "user_id", user.ID)
		}
		m.setState(next)
	})
}

// Ready is closed once Restore has finished.
func (m *Manager) Ready() <-chan struct{} {
	return m.ready
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.state
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func (m *Manager) SignIn(ctx context.Context, creds models.SignInCredentials) error {
	resp, err := m.svc.SignIn(ctx, creds)
	if err != nil {
		return err
	}
	return m.establish(ctx, resp)
}

func (m *Manager) SignUp(ctx context.Context, creds models.SignUpCredentials) error {
	resp, err := m.svc.SignUp(ctx, creds)
	if err != nil {
		return err
	}
	return m.establish(ctx, resp)
}

// SignOut clears the stored session. If storage fails the error is returned
// and the in-memory session is kept, so memory and storage never disagree.
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.svc.SignOut(ctx); err != nil {
		m.log.Error(ctx, "sign out failed", "error", err)
		return err
	}
	m.setState(State{})
	return nil
}

// Subscribe registers fn to be called with the new state after every
// change. The returned func removes the listener.
func (m *Manager) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

func (m *Manager) establish(ctx context.Context, resp *models.AuthResponse) error {
	if err := m.svc.SaveSession(ctx, resp.Token, resp.User); err != nil {
		return err
	}
	user := resp.User
	m.setState(State{User: &user, Token: resp.Token})
	m.log.Info(ctx, "signed in", "user_id", user.ID)
	return nil
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	fns := make([]func(State), 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(m.State())
	}
}
