package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ai-health-assistant/internal/auth"
	"ai-health-assistant/internal/model"
)

// LoginURL stores a one-time state nonce and returns the Google
// consent page URL.
func (uc *implUseCase) LoginURL(ctx context.Context) (auth.LoginURLOutput, error) {
	if uc.provider == nil {
		return auth.LoginURLOutput{}, auth.ErrProviderNotConfigured
	}

	state := uuid.NewString()
	if err := uc.repo.SaveState(ctx, state); err != nil {
		uc.l.Errorf(ctx, "uc.LoginURL SaveState: %v", err)
		return auth.LoginURLOutput{}, err
	}

	return auth.LoginURLOutput{URL: uc.provider.AuthCodeURL(state)}, nil
}

// Callback consumes the state nonce, exchanges the code, and creates a
// session for the verified Google identity.
func (uc *implUseCase) Callback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	if uc.provider == nil {
		return auth.CallbackOutput{}, auth.ErrProviderNotConfigured
	}

	if !uc.repo.ConsumeState(ctx, input.State) {
		return auth.CallbackOutput{}, auth.ErrInvalidState
	}

	info, err := uc.provider.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Callback Exchange: %v", err)
		return auth.CallbackOutput{}, fmt.Errorf("%w: %v", auth.ErrExchangeFailed, err)
	}

	session := uc.newSession("google_"+info.ID, info.Email, info.Name, info.Picture)
	if err := uc.repo.CreateSession(ctx, session); err != nil {
		uc.l.Errorf(ctx, "uc.Callback CreateSession: %v", err)
		return auth.CallbackOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Callback: session created for %s", session.UserID)
	return auth.CallbackOutput{Session: session}, nil
}

// Logout deletes the session, if any.
func (uc *implUseCase) Logout(ctx context.Context, sessionID string) error {
	uc.repo.DeleteSession(ctx, sessionID)
	return nil
}

// DevLogin creates a session without Google. The httpserver only
// registers its route outside production.
func (uc *implUseCase) DevLogin(ctx context.Context, input auth.DevLoginInput) (auth.DevLoginOutput, error) {
	session := uc.newSession("dev_"+input.Email, input.Email, input.Name, "")
	if err := uc.repo.CreateSession(ctx, session); err != nil {
		uc.l.Errorf(ctx, "uc.DevLogin CreateSession: %v", err)
		return auth.DevLoginOutput{}, err
	}

	uc.l.Warnf(ctx, "uc.DevLogin: dev session created for %s", session.UserID)
	return auth.DevLoginOutput{Session: session}, nil
}

func (uc *implUseCase) newSession(userID, email, name, picture string) model.Session {
	now := time.Now()
	return model.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Email:     email,
		Name:      name,
		Picture:   picture,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.sessionTTL),
	}
}
