package auth

import "errors"

var (
	ErrProviderNotConfigured = errors.New("google sign-in is not configured")
	ErrInvalidState          = errors.New("oauth state is invalid or already used")
	ErrExchangeFailed        = errors.New("code exchange failed")
	ErrSessionNotFound       = errors.New("session not found")
)
