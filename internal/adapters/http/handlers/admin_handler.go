package handlers

import (
	"errors"

	"hbt-medrefill/internal/core/domain"
	"hbt-medrefill/internal/core/services"
	"hbt-medrefill/internal/pkg/pagination"
	"hbt-medrefill/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the staff panel endpoints. Every route here sits
// behind the admin gate middleware.
type AdminHandler struct {
	bookingService *services.BookingService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(bookingService *services.BookingService) *AdminHandler {
	return &AdminHandler{
		bookingService: bookingService,
	}
}

// UpdateStatusRequest represents a status transition body
type UpdateStatusRequest struct {
	Status          domain.BookingStatus `json:"status"`
	RejectionReason string               `json:"rejection_reason"`
}

// List returns all bookings ordered by appointment date
// @Summary List bookings
// @Description All bookings sorted by appointment date ascending. Pass limit to paginate.
// @Tags Admin
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (omit for the whole list)"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /admin/bookings [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	bookings := h.bookingService.List()

	params := pagination.GetParams(c)
	start, end := params.Window(len(bookings))

	page := make([]domain.BookingResponse, 0, end-start)
	for _, b := range bookings[start:end] {
		page = append(page, b.ToResponse())
	}

	return response.Success(c, "Bookings retrieved", fiber.Map{
		"bookings": page,
		"meta":     pagination.GetMeta(params, len(bookings)),
	})
}

// Stats returns the admin panel aggregates
// @Summary Booking counts
// @Description Total, pending, completed and rejected booking counts
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /admin/bookings/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	return response.Success(c, "Booking counts retrieved", h.bookingService.Counts())
}

// UpdateStatus transitions a booking's status
// @Summary Update booking status
// @Description Set a booking to pending, completed or rejected. Rejecting without a reason stores the default reason. An unknown id is a no-op.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param body body UpdateStatusRequest true "Target status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /admin/bookings/{id}/status [put]
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "Booking ID is required")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	booking, updated, err := h.bookingService.UpdateStatus(id, req.Status, req.RejectionReason)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return response.BadRequest(c, "Status must be pending, completed or rejected")
		}
		return response.InternalServerError(c, "Failed to update booking status")
	}

	// Unknown id is a silent no-op, not an error
	if !updated {
		return response.Success(c, "No booking matched", fiber.Map{
			"updated": false,
		})
	}

	return response.Success(c, "Booking status updated", fiber.Map{
		"updated": true,
		"booking": booking.ToResponse(),
	})
}

// Delete removes a booking
// @Summary Delete booking
// @Description Irreversibly remove a booking. Deleting an absent id is idempotent.
// @Tags Admin
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /admin/bookings/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "Booking ID is required")
	}

	deleted := h.bookingService.Delete(id)

	return response.Success(c, "Booking deleted", fiber.Map{
		"deleted": deleted,
	})
}
