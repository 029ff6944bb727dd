package test

import (
	"ai-health-assistant/internal/relay"
	pkgLog "ai-health-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleTestRelay(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, r relay.Relay) Handler {
	return &handler{
		l:     l,
		relay: r,
	}
}
