package test

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-health-assistant/internal/relay"
	pkgLog "ai-health-assistant/pkg/log"
)

type handler struct {
	l     pkgLog.Logger
	relay relay.Relay
}

// HandleTestRelay is a test endpoint to exercise the completion relay
// with an empty context window, bypassing auth and conversation state.
// @Summary Test the completion relay
// @Description Send a single prompt straight through the relay
// @Tags test
// @Accept json
// @Produce json
// @Param request body TestRelayRequest true "Prompt text"
// @Success 200 {object} TestRelayResponse
// @Router /test/relay [post]
func (h *handler) HandleTestRelay(c *gin.Context) {
	ctx := c.Request.Context()

	var req TestRelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, TestRelayResponse{Success: false, Error: "text is required"})
		return
	}

	reply, err := h.relay.Complete(ctx, req.Text, nil)
	if err != nil {
		h.l.Errorf(ctx, "test.HandleTestRelay: %v", err)
		c.JSON(http.StatusOK, TestRelayResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TestRelayResponse{Success: true, Text: reply.Text})
}

// HandleHealthCheck reports that the test surface is reachable.
// @Summary Test health check
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "test routes are live",
	})
}
