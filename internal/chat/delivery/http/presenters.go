package http

import (
	"strings"
	"time"

	"ai-health-assistant/internal/chat"
	"ai-health-assistant/internal/model"
	pkgErrors "ai-health-assistant/pkg/errors"
)

// --- Request DTOs ---

type historyEntry struct {
	Role    string `json:"role"    binding:"required"`
	Content string `json:"content"`
}

type sendReq struct {
	Message             string         `json:"message"`
	ConversationHistory []historyEntry `json:"conversationHistory"`
}

func (r sendReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return pkgErrors.NewHTTPError(400, "Message is required")
	}
	return nil
}

func (r sendReq) toInput() chat.SendInput {
	history := make([]chat.Message, 0, len(r.ConversationHistory))
	for _, e := range r.ConversationHistory {
		history = append(history, chat.Message{
			Role:    model.Role(e.Role),
			Content: e.Content,
		})
	}
	return chat.SendInput{
		Message: r.Message,
		History: history,
	}
}

// --- Response DTOs ---

type usageResp struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// sendResp carries the assistant text at the top level, plus usage
// when the upstream reported it.
type sendResp struct {
	Message string     `json:"message"`
	Usage   *usageResp `json:"usage,omitempty"`
}

func (h *handler) newSendResp(out chat.SendOutput) sendResp {
	resp := sendResp{Message: out.Reply.Content}
	if out.Usage != nil {
		resp.Usage = &usageResp{
			PromptTokens:     out.Usage.PromptTokens,
			CompletionTokens: out.Usage.CompletionTokens,
			TotalTokens:      out.Usage.TotalTokens,
		}
	}
	return resp
}

type turnResp struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func newTurnResp(t model.Turn) turnResp {
	return turnResp{
		ID:        t.ID,
		Role:      string(t.Role),
		Content:   t.Content,
		Timestamp: t.Timestamp,
	}
}

type historyResp struct {
	Turns   []turnResp `json:"turns"`
	Pending bool       `json:"pending"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = newTurnResp(t)
	}
	return historyResp{
		Turns:   turns,
		Pending: out.Pending,
	}
}

type resetResp struct {
	Turn turnResp `json:"turn"`
}

func (h *handler) newResetResp(out chat.ResetOutput) resetResp {
	return resetResp{Turn: newTurnResp(out.Welcome)}
}
