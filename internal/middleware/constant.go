package middleware

const (
	// DefaultCookieName is the session cookie name.
	DefaultCookieName = "aha_session"

	// DefaultRateLimitPerMin is the per-user chat rate limit.
	DefaultRateLimitPerMin = 20

	// scopeKey is the gin context key holding the request Scope.
	scopeKey = "middleware.scope"

	// sessionIDKey is the gin context key holding the session id.
	sessionIDKey = "middleware.session_id"
)
