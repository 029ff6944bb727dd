package memory_test

import (
	"context"
	"testing"
	"time"

	"ai-health-assistant/internal/chat/repository/memory"
)

func TestGetOrCreate(t *testing.T) {
	repo := memory.New(time.Hour)
	ctx := context.Background()

	t.Run("Same Key Same Instance", func(t *testing.T) {
		a := repo.GetOrCreate(ctx, "user-1")
		b := repo.GetOrCreate(ctx, "user-1")
		if a != b {
			t.Errorf("expected the same conversation instance")
		}
	})

	t.Run("Different Keys Different Instances", func(t *testing.T) {
		a := repo.GetOrCreate(ctx, "user-1")
		b := repo.GetOrCreate(ctx, "user-2")
		if a == b {
			t.Errorf("expected distinct conversation instances")
		}
	})

	t.Run("State Survives Lookups", func(t *testing.T) {
		a := repo.GetOrCreate(ctx, "user-3")
		if _, err := a.AppendUserTurn("hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		b := repo.GetOrCreate(ctx, "user-3")
		if b.Len() != 2 {
			t.Errorf("expected 2 turns on relookup, got %d", b.Len())
		}
		if !b.Pending() {
			t.Errorf("expected pending flag to survive relookup")
		}
	})
}

func TestDelete(t *testing.T) {
	repo := memory.New(time.Hour)
	ctx := context.Background()

	a := repo.GetOrCreate(ctx, "user-1")
	a.AppendUserTurn("hello")

	repo.Delete(ctx, "user-1")

	b := repo.GetOrCreate(ctx, "user-1")
	if a == b {
		t.Errorf("expected a fresh conversation after delete")
	}
	if b.Len() != 1 {
		t.Errorf("expected fresh welcome-only conversation, got %d turns", b.Len())
	}
}
