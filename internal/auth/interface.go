package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// LoginURL stores a one-time state nonce and returns the Google
	// consent page URL.
	LoginURL(ctx context.Context) (LoginURLOutput, error)

	// Callback consumes the state nonce, exchanges the code, and
	// creates a session for the verified identity.
	Callback(ctx context.Context, input CallbackInput) (CallbackOutput, error)

	// Logout deletes the session, if any.
	Logout(ctx context.Context, sessionID string) error

	// DevLogin creates a session without Google. Exposed only outside
	// production.
	DevLogin(ctx context.Context, input DevLoginInput) (DevLoginOutput, error)
}
