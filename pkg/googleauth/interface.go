package googleauth

import "context"

// IGoogleAuth defines the interface for the Google sign-in client.
// Implementations are safe for concurrent use.
type IGoogleAuth interface {
	// AuthCodeURL returns the Google consent page URL for the given state nonce
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for the verified user identity
	Exchange(ctx context.Context, code string) (*UserInfo, error)
}

// New creates a new Google sign-in client with the given configuration
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
