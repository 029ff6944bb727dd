package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "ai-health-assistant/pkg/errors"
)

// processSendReq binds and validates the send message request body.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "Message is required")
	}
	return req, req.validate()
}
