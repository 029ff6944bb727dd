package usecase

import (
	"time"

	"ai-health-assistant/internal/auth/repository"
	"ai-health-assistant/pkg/googleauth"
	"ai-health-assistant/pkg/log"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo       repository.Repository
	provider   googleauth.IGoogleAuth
	sessionTTL time.Duration
	l          log.Logger
}

// New creates a new auth UseCase implementation. provider may be nil
// when Google sign-in is not configured; login then fails per call.
func New(repo repository.Repository, provider googleauth.IGoogleAuth, sessionTTL time.Duration, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		provider:   provider,
		sessionTTL: sessionTTL,
		l:          l,
	}
}
