package chat

import (
	"strings"
	"sync"

	"ai-health-assistant/internal/model"
)

// Conversation is an append-only sequence of turns with a single
// in-flight guard. The first turn is always the assistant welcome.
//
// The mutex guards state transitions only; it is never held across the
// relay call. Overlapping sends are rejected, not queued.
type Conversation struct {
	mu      sync.Mutex
	turns   []model.Turn
	pending bool
}

// NewConversation creates a conversation seeded with the welcome turn.
func NewConversation() *Conversation {
	return &Conversation{
		turns: []model.Turn{model.NewTurn(model.RoleAssistant, WelcomeText)},
	}
}

// AppendUserTurn validates and appends a user turn, marks a reply as
// in flight, and returns the context window captured before the append.
//
// Returns ErrEmptyMessage for blank text and ErrReplyInFlight while a
// previous send is unresolved; both leave the conversation untouched.
func (c *Conversation) AppendUserTurn(text string) ([]Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending {
		return nil, ErrReplyInFlight
	}

	window := c.contextWindowLocked()
	c.turns = append(c.turns, model.NewTurn(model.RoleUser, text))
	c.pending = true

	return window, nil
}

// Resolve appends the assistant turn produced for the in-flight send
// and clears the pending flag. Called exactly once per accepted
// AppendUserTurn, on success and on failure alike.
func (c *Conversation) Resolve(turn model.Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.turns = append(c.turns, turn)
	c.pending = false
}

// Reset replaces the conversation with a single fresh welcome turn.
// Permitted while a reply is in flight: the pending flag is left as is
// and the eventual Resolve appends to the new conversation.
func (c *Conversation) Reset() model.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()

	welcome := model.NewTurn(model.RoleAssistant, WelcomeText)
	c.turns = []model.Turn{welcome}

	return welcome
}

// SeedHistory adopts a client-supplied history into a fresh
// conversation (welcome turn only, nothing in flight). The adopted
// slice is capped to the most recent HistoryWindow entries. Reports
// whether the history was adopted.
func (c *Conversation) SeedHistory(msgs []Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending || len(c.turns) != 1 {
		return false
	}
	if len(msgs) == 0 {
		return false
	}

	if len(msgs) > HistoryWindow {
		msgs = msgs[len(msgs)-HistoryWindow:]
	}

	for _, m := range msgs {
		if m.Role != model.RoleUser && m.Role != model.RoleAssistant {
			continue
		}
		c.turns = append(c.turns, model.NewTurn(m.Role, m.Content))
	}

	return true
}

// Turns returns a copy of the conversation turns.
func (c *Conversation) Turns() []model.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Pending reports whether a reply is in flight.
func (c *Conversation) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pending
}

// Len returns the number of turns.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.turns)
}

// contextWindowLocked projects the last HistoryWindow turns after the
// seeded welcome into {role, content} pairs, preserving order.
// Callers must hold c.mu.
func (c *Conversation) contextWindowLocked() []Message {
	history := c.turns[1:]
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	window := make([]Message, 0, len(history))
	for _, t := range history {
		window = append(window, Message{Role: t.Role, Content: t.Content})
	}

	return window
}
