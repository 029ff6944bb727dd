package repository

import (
	"context"

	"ai-health-assistant/internal/chat"
)

// ConversationRepository hands out the live conversation for a key.
// Implementations must return the same instance for the same key until
// it is deleted or evicted.
type ConversationRepository interface {
	// GetOrCreate returns the conversation for key, creating a fresh
	// one (welcome turn only) when none exists.
	GetOrCreate(ctx context.Context, key string) *chat.Conversation

	// Delete removes the conversation for key, if any.
	Delete(ctx context.Context, key string)
}
