package http

import (
	"ai-health-assistant/internal/auth"
	"ai-health-assistant/pkg/log"
)

// CookieConfig controls how the session cookie is written.
type CookieConfig struct {
	Name     string
	Domain   string
	Secure   bool
	MaxAge   int
	Redirect string // where the browser lands after the callback
}

type handler struct {
	l      log.Logger
	uc     auth.UseCase
	cookie CookieConfig
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, cookie CookieConfig) *handler {
	if cookie.Redirect == "" {
		cookie.Redirect = "/"
	}
	return &handler{
		l:      l,
		uc:     uc,
		cookie: cookie,
	}
}
