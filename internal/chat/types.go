package chat

import "ai-health-assistant/internal/model"

// Message is a {role, content} projection of a Turn, the shape sent
// to the remote model and accepted from clients as history.
type Message struct {
	Role    model.Role
	Content string
}

// Usage tracks token consumption reported by the remote model.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// --- UseCase Inputs ---

type SendInput struct {
	Message string
	// History optionally rehydrates a fresh server-side conversation
	// from the client's copy. Ignored once the conversation has turns.
	History []Message
}

// --- UseCase Outputs ---

type SendOutput struct {
	Reply model.Turn
	Usage *Usage
}

type HistoryOutput struct {
	Turns   []model.Turn
	Pending bool
}

type ResetOutput struct {
	Welcome model.Turn
}
