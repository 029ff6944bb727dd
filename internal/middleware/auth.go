package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ai-health-assistant/internal/model"
	"ai-health-assistant/pkg/response"
)

// Auth resolves the session from the cookie or a bearer token and puts
// the caller's Scope into the gin context. Requests without a live
// session are rejected with 401 before any relay work happens.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := m.extractSessionID(c)
		if sessionID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		session, ok := m.sessions.GetSession(c.Request.Context(), sessionID)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(sessionIDKey, session.ID)
		c.Set(scopeKey, model.Scope{
			UserID: session.UserID,
			Email:  session.Email,
			Name:   session.Name,
		})

		c.Next()
	}
}

func (m Middleware) extractSessionID(c *gin.Context) string {
	if cookie, err := c.Cookie(m.config.CookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}

	return ""
}

// GetScope returns the Scope placed by Auth. The second result is
// false on routes that skipped the Auth middleware.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

// GetSessionID returns the session id placed by Auth.
func GetSessionID(c *gin.Context) (string, bool) {
	v, ok := c.Get(sessionIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
