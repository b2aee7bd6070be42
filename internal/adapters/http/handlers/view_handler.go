package handlers

import (
	"errors"

	"hbt-medrefill/internal/core/services"
	"hbt-medrefill/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ViewHandler exposes the view coordinator to the presentation layer
type ViewHandler struct {
	views    *services.ViewService
	sessions *services.SessionService
}

// NewViewHandler creates a new view handler
func NewViewHandler(views *services.ViewService, sessions *services.SessionService) *ViewHandler {
	return &ViewHandler{
		views:    views,
		sessions: sessions,
	}
}

// SwitchRequest represents a view switch body
type SwitchRequest struct {
	View services.View `json:"view"`
}

// State returns the coordinator state
// @Summary Coordinator state
// @Description Returns the active view, the resolved screen and the current transient notification
// @Tags View
// @Produce json
// @Success 200 {object} response.Response
// @Router /view [get]
func (h *ViewHandler) State(c *fiber.Ctx) error {
	state := h.views.State(h.sessions.LoggedIn())
	return response.Success(c, "View state retrieved", state)
}

// Switch changes the active view
// @Summary Switch view
// @Description Select the active view. Selecting admin while logged out resolves to the login screen.
// @Tags View
// @Accept json
// @Produce json
// @Param body body SwitchRequest true "Target view"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /view/switch [post]
func (h *ViewHandler) Switch(c *fiber.Ctx) error {
	var req SwitchRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.views.Switch(req.View); err != nil {
		if errors.Is(err, services.ErrUnknownView) {
			return response.BadRequest(c, "Unknown view")
		}
		return response.InternalServerError(c, "Failed to switch view")
	}

	state := h.views.State(h.sessions.LoggedIn())
	return response.Success(c, "View switched", state)
}
