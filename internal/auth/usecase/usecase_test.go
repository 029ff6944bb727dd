package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-health-assistant/internal/auth"
	"ai-health-assistant/internal/auth/repository/memory"
	"ai-health-assistant/internal/auth/usecase"
	"ai-health-assistant/pkg/googleauth"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock Google provider for testing
type mockProvider struct {
	exchangeFunc func(code string) (*googleauth.UserInfo, error)
}

func (m *mockProvider) AuthCodeURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (m *mockProvider) Exchange(ctx context.Context, code string) (*googleauth.UserInfo, error) {
	if m.exchangeFunc != nil {
		return m.exchangeFunc(code)
	}
	return &googleauth.UserInfo{ID: "108123", Email: "jo@example.com", Name: "Jo"}, nil
}

func TestLoginURL(t *testing.T) {
	t.Run("Provider Not Configured", func(t *testing.T) {
		uc := usecase.New(memory.New(time.Hour), nil, time.Hour, &mockLogger{})
		_, err := uc.LoginURL(context.Background())
		if !errors.Is(err, auth.ErrProviderNotConfigured) {
			t.Errorf("expected ErrProviderNotConfigured, got %v", err)
		}
	})

	t.Run("State Stored And Embedded", func(t *testing.T) {
		repo := memory.New(time.Hour)
		uc := usecase.New(repo, &mockProvider{}, time.Hour, &mockLogger{})

		out, err := uc.LoginURL(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		state := out.URL[len("https://accounts.example.com/auth?state="):]
		if !repo.ConsumeState(context.Background(), state) {
			t.Errorf("expected state %q to be stored", state)
		}
	})
}

func TestCallback(t *testing.T) {
	newUC := func(repo *memory.Repository, p googleauth.IGoogleAuth) auth.UseCase {
		return usecase.New(repo, p, time.Hour, &mockLogger{})
	}

	t.Run("Success Flow", func(t *testing.T) {
		repo := memory.New(time.Hour)
		uc := newUC(repo, &mockProvider{})
		repo.SaveState(context.Background(), "state-1")

		out, err := uc.Callback(context.Background(), auth.CallbackInput{Code: "code-1", State: "state-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Session.UserID != "google_108123" {
			t.Errorf("unexpected user id: %q", out.Session.UserID)
		}

		got, ok := repo.GetSession(context.Background(), out.Session.ID)
		if !ok || got.Email != "jo@example.com" {
			t.Errorf("expected session persisted, got %+v ok=%v", got, ok)
		}
	})

	t.Run("Unknown State Rejected", func(t *testing.T) {
		uc := newUC(memory.New(time.Hour), &mockProvider{})
		_, err := uc.Callback(context.Background(), auth.CallbackInput{Code: "code-1", State: "forged"})
		if !errors.Is(err, auth.ErrInvalidState) {
			t.Errorf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("State Single Use", func(t *testing.T) {
		repo := memory.New(time.Hour)
		uc := newUC(repo, &mockProvider{})
		repo.SaveState(context.Background(), "state-1")

		if _, err := uc.Callback(context.Background(), auth.CallbackInput{Code: "code-1", State: "state-1"}); err != nil {
			t.Fatalf("first callback failed: %v", err)
		}
		_, err := uc.Callback(context.Background(), auth.CallbackInput{Code: "code-1", State: "state-1"})
		if !errors.Is(err, auth.ErrInvalidState) {
			t.Errorf("expected replayed state to be rejected, got %v", err)
		}
	})

	t.Run("Exchange Failure", func(t *testing.T) {
		repo := memory.New(time.Hour)
		provider := &mockProvider{
			exchangeFunc: func(code string) (*googleauth.UserInfo, error) {
				return nil, errors.New("invalid_grant")
			},
		}
		uc := newUC(repo, provider)
		repo.SaveState(context.Background(), "state-1")

		_, err := uc.Callback(context.Background(), auth.CallbackInput{Code: "bad", State: "state-1"})
		if !errors.Is(err, auth.ErrExchangeFailed) {
			t.Errorf("expected ErrExchangeFailed, got %v", err)
		}
	})
}

func TestLogout(t *testing.T) {
	repo := memory.New(time.Hour)
	uc := usecase.New(repo, &mockProvider{}, time.Hour, &mockLogger{})
	repo.SaveState(context.Background(), "state-1")

	out, err := uc.Callback(context.Background(), auth.CallbackInput{Code: "code-1", State: "state-1"})
	if err != nil {
		t.Fatalf("callback failed: %v", err)
	}

	if err := uc.Logout(context.Background(), out.Session.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.GetSession(context.Background(), out.Session.ID); ok {
		t.Errorf("expected session deleted")
	}
}

func TestDevLogin(t *testing.T) {
	repo := memory.New(time.Hour)
	uc := usecase.New(repo, nil, time.Hour, &mockLogger{})

	out, err := uc.DevLogin(context.Background(), auth.DevLoginInput{Email: "dev@example.com", Name: "Dev"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Session.UserID != "dev_dev@example.com" {
		t.Errorf("unexpected user id: %q", out.Session.UserID)
	}
	if _, ok := repo.GetSession(context.Background(), out.Session.ID); !ok {
		t.Errorf("expected session persisted")
	}
}
