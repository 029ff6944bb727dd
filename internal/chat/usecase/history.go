package usecase

import (
	"context"

	"ai-health-assistant/internal/chat"
	"ai-health-assistant/internal/model"
)

// History returns the full conversation and the pending flag.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope) (chat.HistoryOutput, error) {
	conv := uc.repo.GetOrCreate(ctx, sc.UserID)

	return chat.HistoryOutput{
		Turns:   conv.Turns(),
		Pending: conv.Pending(),
	}, nil
}
