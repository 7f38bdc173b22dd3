package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusgpt/portal-api/internal/middleware"
	"github.com/campusgpt/portal-api/internal/models"
	"github.com/campusgpt/portal-api/internal/service"
	"github.com/campusgpt/portal-api/pkg/config"
	appErrors "github.com/campusgpt/portal-api/pkg/errors"
	"github.com/campusgpt/portal-api/pkg/response"
)

// AuthHandler wires the login/logout endpoints to the auth service and owns
// the session cookie exchange.
type AuthHandler struct {
	service *service.AuthService
	cookie  config.SessionConfig
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, cookie config.SessionConfig) *AuthHandler {
	return &AuthHandler{service: svc, cookie: cookie}
}

// Login godoc
// @Summary Authenticate user
// @Description Verify credentials and establish a session cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	priorToken, _ := c.Cookie(h.cookie.CookieName)

	res, err := h.service.Login(req, priorToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, res.Token, time.Until(res.ExpiresAt))
	response.JSON(c, http.StatusOK, res)
}

// Logout godoc
// @Summary End the current session
// @Description Clears the session binding and cookie. Always succeeds.
// @Tags Authentication
// @Produce json
// @Success 204 {object} response.Envelope
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookie.CookieName); err == nil {
		h.service.Logout(token)
	}
	h.setSessionCookie(c, "", -time.Hour)
	response.NoContent(c)
}

// Me godoc
// @Summary Get current user
// @Description Returns the authenticated user's role-stripped profile
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, models.NewUserInfo(user))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.CookieName, token, int(ttl.Seconds()), "/", "", h.cookie.Secure, true)
}
