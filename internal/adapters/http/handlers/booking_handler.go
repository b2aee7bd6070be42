package handlers

import (
	"errors"

	"hbt-medrefill/internal/core/domain"
	"hbt-medrefill/internal/core/services"
	"hbt-medrefill/internal/core/validation"
	"hbt-medrefill/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BookingHandler handles the public booking creation endpoint
type BookingHandler struct {
	bookingService *services.BookingService
	views          *services.ViewService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *services.BookingService, views *services.ViewService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		views:          views,
	}
}

// Create handles a patient refill-appointment submission
// @Summary Create booking
// @Description Register a new medication-refill appointment request
// @Tags Bookings
// @Accept json
// @Produce json
// @Param body body domain.BookingInput true "Booking submission"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	// A new submission clears whatever message is still showing
	h.views.ClearNotification()

	var input domain.BookingInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	booking, err := h.bookingService.CreateBooking(&input)
	if err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			h.views.Notify(services.NotifyError, vErr.Message)
			return response.BadRequest(c, vErr.Message)
		}
		return response.InternalServerError(c, "Failed to create booking")
	}

	h.views.Notify(services.NotifySuccess, domain.MsgBookingCreated)
	return response.Created(c, domain.MsgBookingCreated, booking.ToResponse())
}
