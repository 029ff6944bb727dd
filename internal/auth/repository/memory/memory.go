package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"ai-health-assistant/internal/auth/repository"
	"ai-health-assistant/internal/model"
)

const (
	maxSessions = 10000
	maxStates   = 1000

	stateTTL = 10 * time.Minute
)

// Repository keeps sessions and OAuth state nonces in expirable LRUs.
// Restarting the process signs everyone out, which is acceptable for a
// single-instance deployment.
type Repository struct {
	sessions *expirable.LRU[string, model.Session]
	states   *expirable.LRU[string, struct{}]
}

var _ repository.Repository = (*Repository)(nil)

// New creates an in-memory auth repository with the given session TTL.
func New(sessionTTL time.Duration) *Repository {
	return &Repository{
		sessions: expirable.NewLRU[string, model.Session](maxSessions, nil, sessionTTL),
		states:   expirable.NewLRU[string, struct{}](maxStates, nil, stateTTL),
	}
}

// SaveState stores a one-time OAuth state nonce.
func (r *Repository) SaveState(ctx context.Context, state string) error {
	r.states.Add(state, struct{}{})
	return nil
}

// ConsumeState removes the nonce and reports whether it existed.
func (r *Repository) ConsumeState(ctx context.Context, state string) bool {
	_, ok := r.states.Get(state)
	if ok {
		r.states.Remove(state)
	}
	return ok
}

// CreateSession stores a session under its ID.
func (r *Repository) CreateSession(ctx context.Context, session model.Session) error {
	r.sessions.Add(session.ID, session)
	return nil
}

// GetSession looks up a session by ID. Expired entries are treated as
// absent even before the LRU evicts them.
func (r *Repository) GetSession(ctx context.Context, id string) (model.Session, bool) {
	session, ok := r.sessions.Get(id)
	if !ok {
		return model.Session{}, false
	}
	if session.Expired(time.Now()) {
		r.sessions.Remove(id)
		return model.Session{}, false
	}
	return session, true
}

// DeleteSession removes a session, if any.
func (r *Repository) DeleteSession(ctx context.Context, id string) {
	r.sessions.Remove(id)
}
