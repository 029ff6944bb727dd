package http

import (
	"errors"

	"ai-health-assistant/internal/chat"
	"ai-health-assistant/internal/relay"
	pkgErrors "ai-health-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors. The status code preserves the failure class for
// observability; relay-class failures all carry the apology text so
// the UI can render the body directly.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(400, "Message is required")
	case errors.Is(err, chat.ErrReplyInFlight):
		return pkgErrors.NewHTTPError(429, "A reply is already being generated")
	case errors.Is(err, relay.ErrUnauthorized):
		return pkgErrors.NewHTTPError(401, chat.ApologyText)
	case errors.Is(err, relay.ErrRateLimited):
		return pkgErrors.NewHTTPError(429, chat.ApologyText)
	case errors.Is(err, relay.ErrNotConfigured),
		errors.Is(err, relay.ErrEmptyResponse):
		return pkgErrors.NewHTTPError(500, chat.ApologyText)
	default:
		return pkgErrors.NewHTTPError(500, chat.ApologyText)
	}
}
