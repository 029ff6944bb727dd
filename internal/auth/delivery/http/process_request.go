package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "ai-health-assistant/pkg/errors"
)

// processCallbackReq binds and validates the callback query parameters.
func (h *handler) processCallbackReq(c *gin.Context) (callbackReq, error) {
	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(401, "Missing code or state")
	}
	return req, req.validate()
}

// processDevLoginReq binds and validates the dev login request body.
func (h *handler) processDevLoginReq(c *gin.Context) (devLoginReq, error) {
	var req devLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "Email is required")
	}
	return req, req.validate()
}
