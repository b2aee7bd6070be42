package handlers

import (
	"errors"
	"time"

	"hbt-medrefill/internal/config"
	"hbt-medrefill/internal/core/domain"
	"hbt-medrefill/internal/core/services"
	"hbt-medrefill/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles the admin gate endpoints
type SessionHandler struct {
	sessions *services.SessionService
	views    *services.ViewService
	cfg      *config.Config
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *services.SessionService, views *services.ViewService, cfg *config.Config) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		views:    views,
		cfg:      cfg,
	}
}

// LoginRequest represents the admin login body
type LoginRequest struct {
	Password string `json:"password"`
}

// Login handles an admin gate login attempt
// @Summary Admin login
// @Description Open the admin gate with the shared credential
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Shared credential"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	h.views.ClearNotification()

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	token, err := h.sessions.Login(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.views.Notify(services.NotifyError, domain.MsgWrongPassword)
			return response.Unauthorized(c, domain.MsgWrongPassword)
		}
		return response.InternalServerError(c, "Failed to login")
	}

	h.setSessionCookie(c, token)

	return response.Success(c, "Login successful", fiber.Map{
		"session_token": token,
		"state":         h.sessions.State(),
	})
}

// Logout handles an explicit admin logout
// @Summary Admin logout
// @Description Close the admin gate and reset the active view to the creation form
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout()
	h.clearSessionCookie(c)

	return response.Success(c, "Logged out successfully", fiber.Map{
		"state": h.sessions.State(),
	})
}

// Session returns the current gate state
// @Summary Session state
// @Description Returns whether the admin gate is open
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/session [get]
func (h *SessionHandler) Session(c *fiber.Ctx) error {
	return response.Success(c, "Session state retrieved", fiber.Map{
		"state": h.sessions.State(),
	})
}

// setSessionCookie sets the admin session token cookie
func (h *SessionHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "session_token",
		Value:    token,
		Path:     "/",
		MaxAge:   h.cfg.Session.TokenMins * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// clearSessionCookie clears the admin session token cookie
func (h *SessionHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "session_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
