package handlers

import (
	"errors"

	"hbt-medrefill/internal/core/domain"
	"hbt-medrefill/internal/core/services"
	"hbt-medrefill/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TrackingHandler handles the self-service status lookup endpoint
type TrackingHandler struct {
	trackingService *services.TrackingService
	views           *services.ViewService
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(trackingService *services.TrackingService, views *services.ViewService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
		views:           views,
	}
}

// TrackRequest represents a tracking lookup body
type TrackRequest struct {
	NationalID  string `json:"national_id"`
	PhoneNumber string `json:"phone_number"`
}

// Track handles a two-credential booking lookup
// @Summary Track booking
// @Description Look up a booking status using national ID and phone number
// @Tags Bookings
// @Accept json
// @Produce json
// @Param body body TrackRequest true "Tracking credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookings/track [post]
func (h *TrackingHandler) Track(c *fiber.Ctx) error {
	h.views.ClearNotification()

	var req TrackRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	booking, err := h.trackingService.Track(req.NationalID, req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			h.views.Notify(services.NotifyError, domain.MsgTrackingInputRequired)
			return response.BadRequest(c, domain.MsgTrackingInputRequired)
		case errors.Is(err, services.ErrBookingNotFound):
			h.views.Notify(services.NotifyError, domain.MsgBookingNotFound)
			return response.NotFound(c, domain.MsgBookingNotFound)
		default:
			return response.InternalServerError(c, "Failed to track booking")
		}
	}

	return response.Success(c, "Booking retrieved", booking.ToResponse())
}
