package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-health-assistant/internal/middleware"
	"ai-health-assistant/pkg/response"
)

// Login godoc
// @Summary     Start Google sign-in
// @Description Redirects the browser to the Google consent page.
// @Tags        Auth
// @Success     302
// @Failure     500 {object} response.Resp "Sign-in not configured"
// @Router      /api/v1/auth/login [GET]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.LoginURL(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.LoginURL: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Redirect(http.StatusFound, output.URL)
}

// Callback godoc
// @Summary     Google sign-in callback
// @Description Exchanges the authorization code, sets the session cookie, and redirects to the app.
// @Tags        Auth
// @Param       code  query string true  "Authorization code"
// @Param       state query string true  "State nonce"
// @Success     302
// @Failure     401 {object} response.Resp "Invalid state or code"
// @Router      /api/v1/auth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCallbackReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Callback(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Callback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setSessionCookie(c, output.Session.ID)
	c.Redirect(http.StatusFound, h.cookie.Redirect)
}

// Logout godoc
// @Summary     Sign out
// @Description Deletes the session and clears the cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Logout(ctx, sessionID); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.clearSessionCookie(c)
	response.OK(c, nil)
}

// Me godoc
// @Summary     Current user
// @Description Returns the signed-in identity for the session.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp{data=meResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	response.OK(c, newMeResp(sc))
}

// DevLogin godoc
// @Summary     Development login
// @Description Creates a session without Google. Only registered outside production.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body devLoginReq true "Identity to impersonate"
// @Success     200 {object} response.Resp{data=devLoginResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/dev-login [POST]
func (h *handler) DevLogin(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDevLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.DevLogin(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.DevLogin: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setSessionCookie(c, output.Session.ID)
	response.OK(c, newDevLoginResp(output))
}

func (h *handler) setSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, sessionID, h.cookie.MaxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
}
