package model

import "time"

// Session is a signed-in browser session backed by a Google identity.
type Session struct {
	ID        string
	UserID    string
	Email     string
	Name      string
	Picture   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
