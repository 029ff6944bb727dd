package auth

import "ai-health-assistant/internal/model"

// --- UseCase Inputs ---

type CallbackInput struct {
	Code  string
	State string
}

type DevLoginInput struct {
	Email string
	Name  string
}

// --- UseCase Outputs ---

type LoginURLOutput struct {
	URL string
}

type CallbackOutput struct {
	Session model.Session
}

type DevLoginOutput struct {
	Session model.Session
}
