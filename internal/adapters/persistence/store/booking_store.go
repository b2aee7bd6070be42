package store

import (
	"sort"
	"sync"
	"time"

	"hbt-medrefill/internal/core/domain"
	"hbt-medrefill/internal/core/validation"

	"github.com/google/uuid"
)

// BookingStore holds all refill bookings for the lifetime of the process.
// Storage is in-memory and ephemeral; everything is lost on restart.
// Fiber serves requests concurrently, so every access goes through the
// mutex even though each individual operation is synchronous.
type BookingStore struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
}

// NewBookingStore creates an empty booking store
func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

// Create validates a patient submission and, if admitted, appends a new
// pending booking. Duplicate identity fields never reject; each
// submission is an independent booking.
func (s *BookingStore) Create(in *domain.BookingInput) (*domain.Booking, error) {
	if err := validation.ValidateBooking(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := &domain.Booking{
		ID:              uuid.NewString(),
		NationalID:      in.NationalID,
		PatientName:     in.PatientName,
		PhoneNumber:     in.PhoneNumber,
		AppointmentDate: in.AppointmentDate,
		Notes:           in.Notes,
		Status:          domain.StatusPending,
		RejectionReason: "",
		SubmittedAt:     time.Now(),
	}
	s.bookings = append(s.bookings, b)

	return clone(b), nil
}

// UpdateStatus sets the status of the booking with the given id. A
// missing id is a silent no-op, reported through the second return
// value. The rejection reason is only written when one is provided;
// rejecting without a reason stores the fixed default. A stale reason
// is never auto-cleared when the status moves away from rejected.
func (s *BookingStore) UpdateStatus(id string, status domain.BookingStatus, reason string) (*domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID != id {
			continue
		}
		b.Status = status
		if status == domain.StatusRejected && reason == "" {
			reason = domain.DefaultRejectionReason
		}
		if reason != "" {
			b.RejectionReason = reason
		}
		return clone(b), true
	}
	return nil, false
}

// Delete removes the booking with the given id. Idempotent: deleting an
// absent id reports false and changes nothing.
func (s *BookingStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return true
		}
	}
	return false
}

// FindByCredentials scans for the first booking whose national ID and
// phone number both match exactly. Matching is case-sensitive and does
// no trimming; normalizing input is the caller's responsibility. With
// duplicate credentials the first booking in insertion order wins.
func (s *BookingStore) FindByCredentials(nationalID, phoneNumber string) (*domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.NationalID == nationalID && b.PhoneNumber == phoneNumber {
			return clone(b), true
		}
	}
	return nil, false
}

// ListAll returns every booking ordered by appointment date ascending.
// The sort is stable, so equal dates keep their insertion order.
func (s *BookingStore) ListAll() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, *b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentTime().Before(out[j].AppointmentTime())
	})
	return out
}

// Counts returns the derived booking aggregates
func (s *BookingStore) Counts() domain.BookingCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := domain.BookingCounts{Total: len(s.bookings)}
	for _, b := range s.bookings {
		switch b.Status {
		case domain.StatusPending:
			counts.Pending++
		case domain.StatusCompleted:
			counts.Completed++
		case domain.StatusRejected:
			counts.Rejected++
		}
	}
	return counts
}

// clone copies a booking so callers can never reach the stored record
func clone(b *domain.Booking) *domain.Booking {
	c := *b
	return &c
}
