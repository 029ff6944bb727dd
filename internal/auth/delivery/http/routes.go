package http

import (
	"ai-health-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Login and callback are unauthenticated by nature; dev-login is wired
// separately by the server only outside production.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)
	rg.POST("/logout", mw.Auth(), h.Logout)
	rg.GET("/me", mw.Auth(), h.Me)
}

// RegisterDevRoutes adds the password-less dev login. Never call this
// in production.
func RegisterDevRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/dev-login", h.DevLogin)
}
