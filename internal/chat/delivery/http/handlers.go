package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-health-assistant/internal/middleware"
	"ai-health-assistant/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Relays one user message to the model and returns the assistant reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "Message and optional client-side history"
// @Success     200  {object} sendResp
// @Failure     400  {object} response.Resp "Missing message"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     429  {object} response.Resp "Rate limited or reply in flight"
// @Failure     500  {object} response.Resp "Relay failure"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Send(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, h.newSendResp(output))
}

// History godoc
// @Summary     Get conversation history
// @Description Returns the full server-side conversation and the pending flag.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp{data=historyResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.History(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// Reset godoc
// @Summary     Reset the conversation
// @Description Replaces the conversation with a fresh welcome turn. Allowed while a reply is in flight.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp{data=resetResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Reset(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newResetResp(output))
}
