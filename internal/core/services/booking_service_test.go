package services

import (
	"testing"

	"hbt-medrefill/internal/adapters/persistence/store"
	"hbt-medrefill/internal/core/domain"
	"hbt-medrefill/internal/core/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingScenario(t *testing.T) {
	st := store.NewBookingStore()
	svc := NewBookingService(st)
	tracking := NewTrackingService(st)

	created, err := svc.CreateBooking(&domain.BookingInput{
		NationalID:      "1234567890",
		PatientName:     "Ali",
		PhoneNumber:     "0500000000",
		AppointmentDate: "2025-01-10",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)

	tracked, err := tracking.Track("1234567890", "0500000000")
	require.NoError(t, err)
	assert.Equal(t, created.ID, tracked.ID)
}

func TestCreateBookingSurfacesValidationError(t *testing.T) {
	svc := NewBookingService(store.NewBookingStore())

	_, err := svc.CreateBooking(&domain.BookingInput{
		NationalID:      "1234567890",
		PatientName:     "",
		PhoneNumber:     "",
		AppointmentDate: "2025-01-10",
	})
	require.Error(t, err)

	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.MsgPatientNameRequired, vErr.Message)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewBookingService(store.NewBookingStore())

	_, _, err := svc.UpdateStatus("any", domain.BookingStatus("cancelled"), "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRejectThenDeleteHidesBooking(t *testing.T) {
	st := store.NewBookingStore()
	svc := NewBookingService(st)
	tracking := NewTrackingService(st)

	created, err := svc.CreateBooking(&domain.BookingInput{
		NationalID:      "1234567890",
		PatientName:     "Ali",
		PhoneNumber:     "0500000000",
		AppointmentDate: "2025-01-10",
	})
	require.NoError(t, err)

	rejected, updated, err := svc.UpdateStatus(created.ID, domain.StatusRejected, "")
	require.NoError(t, err)
	require.True(t, updated)
	assert.Equal(t, domain.DefaultRejectionReason, rejected.RejectionReason)

	require.True(t, svc.Delete(created.ID))

	_, err = tracking.Track("1234567890", "0500000000")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatusUnknownIDIsSilentNoOp(t *testing.T) {
	svc := NewBookingService(store.NewBookingStore())

	b, updated, err := svc.UpdateStatus("missing", domain.StatusCompleted, "")
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Nil(t, b)
}
