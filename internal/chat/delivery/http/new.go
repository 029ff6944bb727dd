package http

import (
	"ai-health-assistant/internal/chat"
	"ai-health-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
