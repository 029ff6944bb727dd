package http

import (
	"ai-health-assistant/internal/auth"
	"ai-health-assistant/internal/model"
)

// --- Request DTOs ---

type callbackReq struct {
	Code  string `form:"code"  binding:"required"`
	State string `form:"state" binding:"required"`
}

func (r callbackReq) validate() error { return nil }

func (r callbackReq) toInput() auth.CallbackInput {
	return auth.CallbackInput{
		Code:  r.Code,
		State: r.State,
	}
}

type devLoginReq struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"  binding:"max=255"`
}

func (r devLoginReq) validate() error { return nil }

func (r devLoginReq) toInput() auth.DevLoginInput {
	return auth.DevLoginInput{
		Email: r.Email,
		Name:  r.Name,
	}
}

// --- Response DTOs ---

type meResp struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

func newMeResp(sc model.Scope) meResp {
	return meResp{
		UserID: sc.UserID,
		Email:  sc.Email,
		Name:   sc.Name,
	}
}

type devLoginResp struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}

func newDevLoginResp(out auth.DevLoginOutput) devLoginResp {
	return devLoginResp{
		SessionID: out.Session.ID,
		UserID:    out.Session.UserID,
	}
}
