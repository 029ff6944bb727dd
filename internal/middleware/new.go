package middleware

import (
	authRepo "ai-health-assistant/internal/auth/repository"
	"ai-health-assistant/pkg/log"
)

// Config holds the middleware knobs read from configuration.
type Config struct {
	CookieName      string
	RateLimitPerMin int
}

type Middleware struct {
	l        log.Logger
	sessions authRepo.Repository
	config   Config
	limiter  *rateLimiter
}

func New(l log.Logger, sessions authRepo.Repository, cfg Config) Middleware {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = DefaultRateLimitPerMin
	}

	return Middleware{
		l:        l,
		sessions: sessions,
		config:   cfg,
		limiter:  newRateLimiter(cfg.RateLimitPerMin),
	}
}
