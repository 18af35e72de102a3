package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/pixeltracer"
)

// ErrTooManySessions is returned by Create when the session cap is reached.
var ErrTooManySessions = errors.New("server: too many open sessions")

// Limits bounds the sessions a SessionManager keeps open.
type Limits struct {
	// MaxSessions caps open sessions. Zero or less means no cap.
	MaxSessions int

	// IdleTTL ends sessions not used for this long. Zero or less means
	// sessions never expire.
	IdleTTL time.Duration
}

// session is one client's drawing. Requests on the same session are
// serialized through mu.
type session struct {
	mu     sync.Mutex
	app    *pixeltracer.App
	closed bool // guarded by mu

	lastUsed time.Time // guarded by SessionManager.mu
}

// close ends the session's App once; later requests see closed.
func (s *session) close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.app.Close(ctx)
}

// SessionManager maps tokens to independent drawing sessions.
//
// Sessions idle for longer than Limits.IdleTTL are ended lazily by Create
// and lookups, and eagerly by Sweep.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*session
	pending  int // Create calls holding a slot while their App is built
	limits   Limits
	opts     []pixeltracer.Option
	now      func() time.Time
}

// NewSessionManager returns an empty manager bounded by limits. opts are
// applied to every App it creates.
func NewSessionManager(limits Limits, opts ...pixeltracer.Option) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*session),
		limits:   limits,
		opts:     opts,
		now:      time.Now,
	}
}

// Create starts a session holding the default scene and returns its token.
// It fails with ErrTooManySessions when MaxSessions sessions are open.
func (m *SessionManager) Create(ctx context.Context) (string, error) {
	m.mu.Lock()
	expired := m.expireLocked()
	full := m.limits.MaxSessions > 0 && len(m.sessions)+m.pending >= m.limits.MaxSessions
	if !full {
		m.pending++
	}
	m.mu.Unlock()

	m.closeExpired(ctx, expired)
	if full {
		return "", ErrTooManySessions
	}

	app, err := pixeltracer.New(ctx, m.opts...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending--
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	m.sessions[token] = &session{app: app, lastUsed: m.now()}
	return token, nil
}

// get returns the session for token and marks it used. An expired session
// is ended and reported as unknown.
func (m *SessionManager) get(ctx context.Context, token string) (*session, bool) {
	m.mu.Lock()
	s, ok := m.sessions[token]
	if ok && m.expired(s) {
		delete(m.sessions, token)
		m.mu.Unlock()
		m.closeExpired(ctx, []*session{s})
		return nil, false
	}
	if ok {
		s.lastUsed = m.now()
	}
	m.mu.Unlock()
	return s, ok
}

// Sweep ends every expired session and returns how many it ended.
func (m *SessionManager) Sweep(ctx context.Context) int {
	m.mu.Lock()
	expired := m.expireLocked()
	m.mu.Unlock()

	m.closeExpired(ctx, expired)
	return len(expired)
}

// Len returns the number of open sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close ends the session and closes its App. It reports whether the token
// was known.
func (m *SessionManager) Close(ctx context.Context, token string) (bool, error) {
	m.mu.Lock()
	s, ok := m.sessions[token]
	delete(m.sessions, token)
	m.mu.Unlock()

	if !ok {
		return false, nil
	}
	return true, s.close(ctx)
}

// CloseAll ends every session.
func (m *SessionManager) CloseAll(ctx context.Context) error {
	m.mu.Lock()
	all := m.sessions
	m.sessions = make(map[string]*session)
	m.mu.Unlock()

	var errs []error
	for _, s := range all {
		errs = append(errs, s.close(ctx))
	}
	return errors.Join(errs...)
}

func (m *SessionManager) expired(s *session) bool {
	return m.limits.IdleTTL > 0 && m.now().Sub(s.lastUsed) > m.limits.IdleTTL
}

// expireLocked removes expired sessions from the map and returns them.
// The caller closes them after releasing m.mu.
func (m *SessionManager) expireLocked() []*session {
	if m.limits.IdleTTL <= 0 {
		return nil
	}
	var out []*session
	for token, s := range m.sessions {
		if m.expired(s) {
			delete(m.sessions, token)
			out = append(out, s)
		}
	}
	return out
}

func (m *SessionManager) closeExpired(ctx context.Context, expired []*session) {
	for _, s := range expired {
		if err := s.close(ctx); err != nil {
			pixeltracer.Logger().Warn("server: closing expired session failed", "err", err)
		}
	}
	if len(expired) > 0 {
		pixeltracer.Logger().Info("server: expired idle sessions", "count", len(expired))
	}
}
