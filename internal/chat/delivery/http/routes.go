package http

import (
	"ai-health-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All chat routes require a session; sends are additionally throttled.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/messages", mw.Auth(), mw.RateLimit(), h.Send)
	rg.GET("/history", mw.Auth(), h.History)
	rg.POST("/reset", mw.Auth(), h.Reset)
}
