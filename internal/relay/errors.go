package relay

import "errors"

var (
	// ErrNotConfigured means no API credential was available when the
	// relay was built. Surfaces at request time, not at startup.
	ErrNotConfigured = errors.New("completion client is not configured")

	// ErrUnauthorized means the upstream rejected the credential.
	ErrUnauthorized = errors.New("completion request was unauthorized")

	// ErrRateLimited means the upstream rejected the call on quota.
	ErrRateLimited = errors.New("completion request was rate limited")

	// ErrEmptyResponse means the upstream call succeeded but carried
	// no text content.
	ErrEmptyResponse = errors.New("completion response was empty")
)
