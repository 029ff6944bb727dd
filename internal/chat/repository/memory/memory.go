package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"ai-health-assistant/internal/chat"
	"ai-health-assistant/internal/chat/repository"
)

const maxConversations = 10000

// Repository keeps conversations in an expirable LRU keyed by user id.
// Idle conversations age out after the TTL; clients rehydrate from
// their own history copy on the next send.
type Repository struct {
	mu            sync.Mutex
	conversations *expirable.LRU[string, *chat.Conversation]
}

var _ repository.ConversationRepository = (*Repository)(nil)

// New creates an in-memory conversation repository with the given TTL.
func New(ttl time.Duration) *Repository {
	return &Repository{
		conversations: expirable.NewLRU[string, *chat.Conversation](
			maxConversations,
			nil, // No eviction callback
			ttl,
		),
	}
}

// GetOrCreate returns the live conversation for key, creating a fresh
// one when none exists. The outer mutex makes the check-then-add
// atomic so two concurrent requests never see different instances.
func (r *Repository) GetOrCreate(ctx context.Context, key string) *chat.Conversation {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conv, ok := r.conversations.Get(key); ok {
		return conv
	}

	conv := chat.NewConversation()
	r.conversations.Add(key, conv)
	return conv
}

// Delete removes the conversation for key, if any.
func (r *Repository) Delete(ctx context.Context, key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conversations.Remove(key)
}
