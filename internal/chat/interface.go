package chat

import (
	"context"

	"ai-health-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Send relays one user message and returns the assistant reply turn.
	Send(ctx context.Context, sc model.Scope, input SendInput) (SendOutput, error)

	// History returns the full conversation and the pending flag.
	History(ctx context.Context, sc model.Scope) (HistoryOutput, error)

	// Reset replaces the conversation with a fresh welcome turn.
	Reset(ctx context.Context, sc model.Scope) (ResetOutput, error)
}
