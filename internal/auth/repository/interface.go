package repository

import (
	"context"

	"ai-health-assistant/internal/model"
)

// Repository stores one-time OAuth state nonces and browser sessions.
type Repository interface {
	// SaveState stores a one-time OAuth state nonce.
	SaveState(ctx context.Context, state string) error

	// ConsumeState removes the nonce and reports whether it existed.
	// A nonce can be consumed at most once.
	ConsumeState(ctx context.Context, state string) bool

	// CreateSession stores a session under its ID.
	CreateSession(ctx context.Context, session model.Session) error

	// GetSession looks up a session by ID.
	GetSession(ctx context.Context, id string) (model.Session, bool)

	// DeleteSession removes a session, if any.
	DeleteSession(ctx context.Context, id string)
}
