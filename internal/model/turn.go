package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message unit in a conversation. Immutable once created.
type Turn struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}

// NewTurn creates a Turn with a fresh id and the current time.
func NewTurn(role Role, content string) Turn {
	return Turn{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}
