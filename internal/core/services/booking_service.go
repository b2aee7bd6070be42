package services

import (
	"errors"
	"log"

	"hbt-medrefill/internal/adapters/persistence/store"
	"hbt-medrefill/internal/core/domain"
)

// Booking errors
var (
	ErrInvalidStatus = errors.New("invalid booking status")
)

// BookingService handles booking creation and administration
type BookingService struct {
	store *store.BookingStore
}

// NewBookingService creates a new booking service
func NewBookingService(st *store.BookingStore) *BookingService {
	return &BookingService{
		store: st,
	}
}

// CreateBooking admits a patient submission. Validation happens inside
// the store; a *validation.Error comes back unwrapped so the handler
// can surface its fixed message.
func (s *BookingService) CreateBooking(in *domain.BookingInput) (*domain.Booking, error) {
	b, err := s.store.Create(in)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Booking %s created for %s (appointment %s)", b.ID, b.PatientName, b.AppointmentDate)
	return b, nil
}

// UpdateStatus transitions a booking to a new status. An unknown id is
// a silent no-op, reported through the bool. Rejecting without a reason
// stores the fixed default reason.
func (s *BookingService) UpdateStatus(id string, status domain.BookingStatus, reason string) (*domain.Booking, bool, error) {
	if !status.Valid() {
		return nil, false, ErrInvalidStatus
	}

	b, updated := s.store.UpdateStatus(id, status, reason)
	if !updated {
		log.Printf("⚠️ Status update for unknown booking %s ignored", id)
		return nil, false, nil
	}

	log.Printf("✅ Booking %s status changed to %s", b.ID, b.Status)
	return b, true, nil
}

// Delete removes a booking irreversibly. Deleting an absent id is
// idempotent.
func (s *BookingService) Delete(id string) bool {
	deleted := s.store.Delete(id)
	if deleted {
		log.Printf("✅ Booking %s deleted", id)
	}
	return deleted
}

// List returns all bookings ordered by appointment date ascending
func (s *BookingService) List() []domain.Booking {
	return s.store.ListAll()
}

// Counts returns the admin panel aggregates
func (s *BookingService) Counts() domain.BookingCounts {
	return s.store.Counts()
}
