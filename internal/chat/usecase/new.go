package usecase

import (
	"ai-health-assistant/internal/chat/repository"
	"ai-health-assistant/internal/relay"
	"ai-health-assistant/pkg/log"
)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	repo  repository.ConversationRepository
	relay relay.Relay
	l     log.Logger
}

// New creates a new chat UseCase implementation.
func New(repo repository.ConversationRepository, r relay.Relay, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		relay: r,
		l:     l,
	}
}
