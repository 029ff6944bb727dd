package http

import (
	"errors"

	"ai-health-assistant/internal/auth"
	pkgErrors "ai-health-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrProviderNotConfigured):
		return pkgErrors.NewHTTPError(500, "Google sign-in is not configured")
	case errors.Is(err, auth.ErrInvalidState):
		return pkgErrors.NewHTTPError(401, "Sign-in request is invalid or expired")
	case errors.Is(err, auth.ErrExchangeFailed):
		return pkgErrors.NewHTTPError(401, "Google rejected the sign-in")
	default:
		return pkgErrors.NewHTTPError(500, "Something went wrong")
	}
}
