package usecase

import (
	"context"

	"ai-health-assistant/internal/chat"
	"ai-health-assistant/internal/model"
)

// Send relays one user message through the completion relay and
// resolves the conversation with exactly one assistant turn, on
// success and on failure alike.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.SendOutput, error) {
	conv := uc.repo.GetOrCreate(ctx, sc.UserID)

	if len(input.History) > 0 {
		if conv.SeedHistory(input.History) {
			uc.l.Infof(ctx, "uc.Send: rehydrated conversation for %s from %d client entries", sc.UserID, len(input.History))
		}
	}

	window, err := conv.AppendUserTurn(input.Message)
	if err != nil {
		return chat.SendOutput{}, err
	}

	reply, err := uc.relay.Complete(ctx, input.Message, window)
	if err != nil {
		// The classification was already logged by the relay; every
		// failure class resolves with the same apology turn.
		uc.l.Errorf(ctx, "uc.Send: relay.Complete for %s: %v", sc.UserID, err)
		conv.Resolve(model.NewTurn(model.RoleAssistant, chat.ApologyText))
		return chat.SendOutput{}, err
	}

	turn := model.NewTurn(model.RoleAssistant, reply.Text)
	conv.Resolve(turn)

	out := chat.SendOutput{Reply: turn}
	if reply.Usage != nil {
		out.Usage = &chat.Usage{
			PromptTokens:     reply.Usage.PromptTokens,
			CompletionTokens: reply.Usage.CompletionTokens,
			TotalTokens:      reply.Usage.TotalTokens,
		}
	}

	return out, nil
}
