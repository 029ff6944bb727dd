package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-health-assistant/internal/chat"
	"ai-health-assistant/internal/chat/repository/memory"
	"ai-health-assistant/internal/chat/usecase"
	"ai-health-assistant/internal/model"
	"ai-health-assistant/internal/relay"
)

func TestSend(t *testing.T) {
	sc := model.Scope{UserID: "google_108123"}

	t.Run("Success Flow", func(t *testing.T) {
		repo := memory.New(time.Hour)
		r := &mockRelay{
			completeFunc: func(userText string, window []chat.Message) (relay.Reply, error) {
				if userText != "I have a headache" {
					t.Errorf("unexpected user text: %q", userText)
				}
				if len(window) != 0 {
					t.Errorf("expected empty window for fresh conversation, got %d", len(window))
				}
				return relay.Reply{
					Text:  "Try resting.",
					Usage: &relay.Usage{PromptTokens: 40, CompletionTokens: 3, TotalTokens: 43},
				}, nil
			},
		}
		uc := usecase.New(repo, r, &mockLogger{})

		out, err := uc.Send(context.Background(), sc, chat.SendInput{Message: "I have a headache"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Reply.Content != "Try resting." {
			t.Errorf("unexpected reply: %q", out.Reply.Content)
		}
		if out.Usage == nil || out.Usage.TotalTokens != 43 {
			t.Errorf("unexpected usage: %+v", out.Usage)
		}

		// Conversation becomes [welcome, user, assistant].
		conv := repo.GetOrCreate(context.Background(), sc.UserID)
		turns := conv.Turns()
		if len(turns) != 3 {
			t.Fatalf("expected 3 turns, got %d", len(turns))
		}
		if turns[1].Role != model.RoleUser || turns[1].Content != "I have a headache" {
			t.Errorf("unexpected user turn: %+v", turns[1])
		}
		if turns[2].Role != model.RoleAssistant || turns[2].Content != "Try resting." {
			t.Errorf("unexpected assistant turn: %+v", turns[2])
		}
		if conv.Pending() {
			t.Errorf("pending must be cleared after resolve")
		}
	})

	t.Run("Empty Message Is Rejected Before Relay", func(t *testing.T) {
		repo := memory.New(time.Hour)
		called := false
		r := &mockRelay{
			completeFunc: func(userText string, window []chat.Message) (relay.Reply, error) {
				called = true
				return relay.Reply{}, nil
			},
		}
		uc := usecase.New(repo, r, &mockLogger{})

		_, err := uc.Send(context.Background(), sc, chat.SendInput{Message: "   "})
		if !errors.Is(err, chat.ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage, got %v", err)
		}
		if called {
			t.Errorf("relay must not be called for empty message")
		}
		if repo.GetOrCreate(context.Background(), sc.UserID).Len() != 1 {
			t.Errorf("conversation must be unchanged")
		}
	})

	t.Run("Relay Failure Appends Apology", func(t *testing.T) {
		repo := memory.New(time.Hour)
		r := &mockRelay{
			completeFunc: func(userText string, window []chat.Message) (relay.Reply, error) {
				return relay.Reply{}, relay.ErrRateLimited
			},
		}
		uc := usecase.New(repo, r, &mockLogger{})

		_, err := uc.Send(context.Background(), sc, chat.SendInput{Message: "hello"})
		if !errors.Is(err, relay.ErrRateLimited) {
			t.Fatalf("expected ErrRateLimited, got %v", err)
		}

		conv := repo.GetOrCreate(context.Background(), sc.UserID)
		turns := conv.Turns()
		if len(turns) != 3 {
			t.Fatalf("expected exactly one assistant turn appended, got %d turns", len(turns))
		}
		if turns[2].Role != model.RoleAssistant || turns[2].Content != chat.ApologyText {
			t.Errorf("expected apology turn, got %+v", turns[2])
		}
		if conv.Pending() {
			t.Errorf("pending must return to false after failure")
		}
	})

	t.Run("Overlapping Send Rejected", func(t *testing.T) {
		repo := memory.New(time.Hour)

		gate := make(chan struct{})
		started := make(chan struct{})
		r := &mockRelay{
			completeFunc: func(userText string, window []chat.Message) (relay.Reply, error) {
				close(started)
				<-gate
				return relay.Reply{Text: "done"}, nil
			},
		}
		uc := usecase.New(repo, r, &mockLogger{})

		errCh := make(chan error, 1)
		go func() {
			_, err := uc.Send(context.Background(), sc, chat.SendInput{Message: "first"})
			errCh <- err
		}()
		<-started

		_, err := uc.Send(context.Background(), sc, chat.SendInput{Message: "second"})
		if !errors.Is(err, chat.ErrReplyInFlight) {
			t.Errorf("expected ErrReplyInFlight, got %v", err)
		}

		close(gate)
		if err := <-errCh; err != nil {
			t.Fatalf("first send failed: %v", err)
		}

		// Only the first send committed: [welcome, user, assistant].
		if repo.GetOrCreate(context.Background(), sc.UserID).Len() != 3 {
			t.Errorf("rejected send must not append turns")
		}
	})

	t.Run("Reset While Pending Commits Stale Reply To New Conversation", func(t *testing.T) {
		repo := memory.New(time.Hour)

		gate := make(chan struct{})
		started := make(chan struct{})
		r := &mockRelay{
			completeFunc: func(userText string, window []chat.Message) (relay.Reply, error) {
				close(started)
				<-gate
				return relay.Reply{Text: "stale reply"}, nil
			},
		}
		uc := usecase.New(repo, r, &mockLogger{})

		done := make(chan struct{})
		go func() {
			uc.Send(context.Background(), sc, chat.SendInput{Message: "slow question"})
			close(done)
		}()
		<-started

		if _, err := uc.Reset(context.Background(), sc); err != nil {
			t.Fatalf("reset failed: %v", err)
		}

		close(gate)
		<-done

		// Documented trade-off: the in-flight result is always
		// committed, even into the conversation the user just cleared.
		turns := repo.GetOrCreate(context.Background(), sc.UserID).Turns()
		if len(turns) != 2 {
			t.Fatalf("expected welcome + stale reply, got %d turns", len(turns))
		}
		if turns[1].Content != "stale reply" {
			t.Errorf("expected stale reply committed, got %q", turns[1].Content)
		}
	})

	t.Run("History Rehydrates Fresh Conversation", func(t *testing.T) {
		repo := memory.New(time.Hour)
		var seenWindow []chat.Message
		r := &mockRelay{
			completeFunc: func(userText string, window []chat.Message) (relay.Reply, error) {
				seenWindow = window
				return relay.Reply{Text: "ok"}, nil
			},
		}
		uc := usecase.New(repo, r, &mockLogger{})

		history := []chat.Message{
			{Role: model.RoleUser, Content: "earlier question"},
			{Role: model.RoleAssistant, Content: "earlier answer"},
		}
		_, err := uc.Send(context.Background(), sc, chat.SendInput{Message: "follow-up", History: history})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(seenWindow) != 2 {
			t.Fatalf("expected rehydrated window of 2, got %d", len(seenWindow))
		}
		if seenWindow[0].Content != "earlier question" {
			t.Errorf("unexpected window: %+v", seenWindow)
		}
	})
}

func TestHistory(t *testing.T) {
	sc := model.Scope{UserID: "google_108123"}
	repo := memory.New(time.Hour)
	uc := usecase.New(repo, &mockRelay{}, &mockLogger{})

	out, err := uc.History(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Turns) != 1 {
		t.Errorf("expected welcome-only history, got %d", len(out.Turns))
	}
	if out.Pending {
		t.Errorf("expected pending false")
	}

	if _, err := uc.Send(context.Background(), sc, chat.SendInput{Message: "hello"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	out, _ = uc.History(context.Background(), sc)
	if len(out.Turns) != 3 {
		t.Errorf("expected 3 turns after send, got %d", len(out.Turns))
	}
}

func TestReset(t *testing.T) {
	sc := model.Scope{UserID: "google_108123"}
	repo := memory.New(time.Hour)
	uc := usecase.New(repo, &mockRelay{}, &mockLogger{})

	uc.Send(context.Background(), sc, chat.SendInput{Message: "hello"})

	out, err := uc.Reset(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Welcome.Role != model.RoleAssistant || out.Welcome.Content != chat.WelcomeText {
		t.Errorf("unexpected welcome turn: %+v", out.Welcome)
	}

	hist, _ := uc.History(context.Background(), sc)
	if len(hist.Turns) != 1 {
		t.Errorf("expected conversation of length 1 after reset, got %d", len(hist.Turns))
	}
}
