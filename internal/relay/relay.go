package relay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ai-health-assistant/internal/chat"
	"ai-health-assistant/pkg/log"
	"ai-health-assistant/pkg/openai"
)

// Relay translates a user turn plus its context window into one remote
// completion request and back.
type Relay interface {
	Complete(ctx context.Context, userText string, window []chat.Message) (Reply, error)
}

// OpenAIRelay implements Relay against the OpenAI chat-completions API.
// Each Complete call is a single attempt: no retries, no local timeout
// beyond the HTTP client's own.
type OpenAIRelay struct {
	l      log.Logger
	client openai.IOpenAI
}

var _ Relay = (*OpenAIRelay)(nil)

// New creates a relay. client may be nil when no credential was
// configured; Complete then fails with ErrNotConfigured per call.
func New(l log.Logger, client openai.IOpenAI) *OpenAIRelay {
	return &OpenAIRelay{
		l:      l,
		client: client,
	}
}

// Complete sends the fixed system prompt, the context window in order,
// and the new user turn, and returns the top response text.
func (r *OpenAIRelay) Complete(ctx context.Context, userText string, window []chat.Message) (Reply, error) {
	if r.client == nil {
		return Reply{}, ErrNotConfigured
	}

	messages := make([]openai.Message, 0, len(window)+2)
	messages = append(messages, openai.Message{Role: openai.RoleSystem, Content: SystemPrompt})
	for _, m := range window {
		messages = append(messages, openai.Message{Role: string(m.Role), Content: m.Content})
	}
	messages = append(messages, openai.Message{Role: openai.RoleUser, Content: userText})

	resp, err := r.client.CreateChatCompletion(ctx, &openai.Request{
		Messages:         messages,
		MaxTokens:        MaxCompletionTokens,
		Temperature:      Temperature,
		PresencePenalty:  PresencePenalty,
		FrequencyPenalty: FrequencyPenalty,
	})
	if err != nil {
		return Reply{}, r.classify(ctx, err)
	}

	if strings.TrimSpace(resp.Content) == "" {
		r.l.Warnf(ctx, "relay.Complete: upstream returned no text (finish_reason=%s)", resp.FinishReason)
		return Reply{}, ErrEmptyResponse
	}

	reply := Reply{Text: resp.Content}
	if resp.Usage != nil {
		reply.Usage = &Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	return reply, nil
}

// classify maps upstream failures onto the relay error taxonomy. The
// classification is kept for server-side diagnostics; callers collapse
// all of these into one apology turn.
func (r *OpenAIRelay) classify(ctx context.Context, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			r.l.Errorf(ctx, "relay.Complete: credential rejected: %v", apiErr)
			return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
		case http.StatusTooManyRequests:
			r.l.Warnf(ctx, "relay.Complete: rate limited: %v", apiErr)
			return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Message)
		}
	}

	r.l.Errorf(ctx, "relay.Complete: completion failed: %v", err)
	return fmt.Errorf("completion failed: %w", err)
}
