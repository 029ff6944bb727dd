package model

// Scope carries the authenticated identity of a request through
// use-case calls. Populated by the Auth middleware.
type Scope struct {
	UserID string
	Email  string
	Name   string
}
