package services

import (
	"errors"
	"strings"

	"hbt-medrefill/internal/core/domain"
)

// Tracking errors. Missing input and no match are distinct outcomes.
var (
	ErrMissingCredentials = errors.New("national id and phone number are required")
	ErrBookingNotFound    = errors.New("no booking matches the given credentials")
)

// TrackingService is the self-service status lookup. It only sees the
// read-only finder surface of the store.
type TrackingService struct {
	finder BookingFinder
}

// NewTrackingService creates a new tracking service
func NewTrackingService(finder BookingFinder) *TrackingService {
	return &TrackingService{
		finder: finder,
	}
}

// Track looks up a booking by the two shared credentials. Presence is
// checked on trimmed input, but the lookup itself uses the raw values;
// matching is exact and case-sensitive.
func (s *TrackingService) Track(nationalID, phoneNumber string) (*domain.Booking, error) {
	if strings.TrimSpace(nationalID) == "" || strings.TrimSpace(phoneNumber) == "" {
		return nil, ErrMissingCredentials
	}

	b, found := s.finder.FindByCredentials(nationalID, phoneNumber)
	if !found {
		return nil, ErrBookingNotFound
	}
	return b, nil
}
