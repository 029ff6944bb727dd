package usecase

import (
	"context"

	"ai-health-assistant/internal/chat"
	"ai-health-assistant/internal/model"
)

// Reset replaces the conversation with a single fresh welcome turn.
// Allowed while a reply is in flight; the stale resolve lands in the
// new conversation.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) (chat.ResetOutput, error) {
	conv := uc.repo.GetOrCreate(ctx, sc.UserID)

	welcome := conv.Reset()
	uc.l.Infof(ctx, "uc.Reset: conversation cleared for %s", sc.UserID)

	return chat.ResetOutput{Welcome: welcome}, nil
}
