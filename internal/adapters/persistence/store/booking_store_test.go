package store

import (
	"fmt"
	"testing"

	"hbt-medrefill/internal/core/domain"
	"hbt-medrefill/internal/core/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInput(nationalID, name, phone, date string) *domain.BookingInput {
	return &domain.BookingInput{
		NationalID:      nationalID,
		PatientName:     name,
		PhoneNumber:     phone,
		AppointmentDate: date,
	}
}

func TestCreateAdmitsValidSubmission(t *testing.T) {
	s := NewBookingStore()

	b, err := s.Create(newInput("1234567890", "Ali", "0500000000", "2025-01-10"))
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Empty(t, b.RejectionReason)
	assert.False(t, b.SubmittedAt.IsZero())
}

func TestCreateRejectsInvalidSubmission(t *testing.T) {
	s := NewBookingStore()

	_, err := s.Create(newInput("123", "Ali", "0500000000", "2025-01-10"))
	require.Error(t, err)
	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)

	assert.Equal(t, 0, s.Counts().Total, "no record may be created on a failed check")
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	s := NewBookingStore()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		b, err := s.Create(newInput("1234567890", "Ali", "0500000000", "2025-01-10"))
		require.NoError(t, err)
		require.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
	}
}

func TestCreateAllowsDuplicateIdentityFields(t *testing.T) {
	s := NewBookingStore()

	_, err := s.Create(newInput("1234567890", "Ali", "0500000000", "2025-01-10"))
	require.NoError(t, err)
	_, err = s.Create(newInput("1234567890", "Ali", "0500000000", "2025-01-10"))
	require.NoError(t, err)

	assert.Equal(t, 2, s.Counts().Total)
}

func TestUpdateStatusDefaultRejectionReason(t *testing.T) {
	s := NewBookingStore()
	b, err := s.Create(newInput("1234567890", "Ali", "0500000000", "2025-01-10"))
	require.NoError(t, err)

	updated, ok := s.UpdateStatus(b.ID, domain.StatusRejected, "")
	require.True(t, ok)
	assert.Equal(t, domain.StatusRejected, updated.Status)
	assert.Equal(t, domain.DefaultRejectionReason, updated.RejectionReason)
}

func TestUpdateStatusExplicitRejectionReason(t *testing.T) {
	s := NewBookingStore()
	b, err := s.Create(newInput("1234567890", "Ali", "0500000000", "2025-01-10"))
	require.NoError(t, err)

	updated, ok := s.UpdateStatus(b.ID, domain.StatusRejected, "no refill order on file")
	require.True(t, ok)
	assert.Equal(t, "no refill order on file", updated.RejectionReason)
}

func TestUpdateStatusKeepsStaleRejectionReason(t *testing.T) {
	s := NewBookingStore()
	b, err := s.Create(newInput("1234567890", "Ali", "0500000000", "2025-01-10"))
	require.NoError(t, err)

	_, ok := s.UpdateStatus(b.ID, domain.StatusRejected, "")
	require.True(t, ok)

	// moving away from rejected does not clear the reason
	updated, ok := s.UpdateStatus(b.ID, domain.StatusPending, "")
	require.True(t, ok)
	assert.Equal(t, domain.StatusPending, updated.Status)
	assert.Equal(t, domain.DefaultRejectionReason, updated.RejectionReason)
}

func TestUpdateStatusMissingIDIsNoOp(t *testing.T) {
	s := NewBookingStore()
	_, err := s.Create(newInput("1234567890", "Ali", "0500000000", "2025-01-10"))
	require.NoError(t, err)

	updated, ok := s.UpdateStatus("no-such-id", domain.StatusCompleted, "")
	assert.False(t, ok)
	assert.Nil(t, updated)
	assert.Equal(t, 1, s.Counts().Pending, "existing records must be untouched")
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := NewBookingStore()
	b, err := s.Create(newInput("1234567890", "Ali", "0500000000", "2025-01-10"))
	require.NoError(t, err)

	assert.True(t, s.Delete(b.ID))
	assert.False(t, s.Delete(b.ID))
	assert.Equal(t, 0, s.Counts().Total)
}

func TestFindByCredentials(t *testing.T) {
	s := NewBookingStore()
	created, err := s.Create(newInput("1234567890", "Ali", "0500000000", "2025-01-10"))
	require.NoError(t, err)

	found, ok := s.FindByCredentials("1234567890", "0500000000")
	require.True(t, ok)
	assert.Equal(t, created.ID, found.ID)

	_, ok = s.FindByCredentials("0987654321", "0500000000")
	assert.False(t, ok)

	// matching is exact: the store does not trim for the caller
	_, ok = s.FindByCredentials(" 1234567890", "0500000000")
	assert.False(t, ok)
}

func TestFindByCredentialsFirstMatchWins(t *testing.T) {
	s := NewBookingStore()

	first, err := s.Create(newInput("1234567890", "Ali", "0500000000", "2025-03-01"))
	require.NoError(t, err)
	_, err = s.Create(newInput("1234567890", "Ali", "0500000000", "2025-01-01"))
	require.NoError(t, err)

	found, ok := s.FindByCredentials("1234567890", "0500000000")
	require.True(t, ok)
	assert.Equal(t, first.ID, found.ID, "first booking in insertion order must win")
}

func TestFindAfterDeleteReturnsNotFound(t *testing.T) {
	s := NewBookingStore()
	b, err := s.Create(newInput("1234567890", "Ali", "0500000000", "2025-01-10"))
	require.NoError(t, err)

	_, ok := s.UpdateStatus(b.ID, domain.StatusRejected, "")
	require.True(t, ok)
	require.True(t, s.Delete(b.ID))

	_, ok = s.FindByCredentials("1234567890", "0500000000")
	assert.False(t, ok)
}

func TestListAllSortsByAppointmentDate(t *testing.T) {
	s := NewBookingStore()

	dates := []string{"2025-03-15", "2025-01-10", "2025-02-20", "2025-01-05"}
	for i, d := range dates {
		_, err := s.Create(newInput("1234567890", fmt.Sprintf("Patient %d", i), "0500000000", d))
		require.NoError(t, err)
	}

	list := s.ListAll()
	require.Len(t, list, 4)
	assert.Equal(t, "2025-01-05", list[0].AppointmentDate)
	assert.Equal(t, "2025-01-10", list[1].AppointmentDate)
	assert.Equal(t, "2025-02-20", list[2].AppointmentDate)
	assert.Equal(t, "2025-03-15", list[3].AppointmentDate)
}

func TestListAllStableForEqualDates(t *testing.T) {
	s := NewBookingStore()

	for i := 0; i < 5; i++ {
		_, err := s.Create(newInput("1234567890", fmt.Sprintf("Patient %d", i), "0500000000", "2025-01-10"))
		require.NoError(t, err)
	}

	list := s.ListAll()
	require.Len(t, list, 5)
	for i, b := range list {
		assert.Equal(t, fmt.Sprintf("Patient %d", i), b.PatientName, "insertion order must survive equal dates")
	}
}

func TestCounts(t *testing.T) {
	s := NewBookingStore()

	a, _ := s.Create(newInput("1234567890", "A", "0500000001", "2025-01-10"))
	b, _ := s.Create(newInput("1234567890", "B", "0500000002", "2025-01-11"))
	_, _ = s.Create(newInput("1234567890", "C", "0500000003", "2025-01-12"))

	s.UpdateStatus(a.ID, domain.StatusCompleted, "")
	s.UpdateStatus(b.ID, domain.StatusRejected, "")

	counts := s.Counts()
	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, 1, counts.Pending)
	assert.Equal(t, 1, counts.Completed)
	assert.Equal(t, 1, counts.Rejected)
}

func TestReturnedBookingsAreCopies(t *testing.T) {
	s := NewBookingStore()
	b, err := s.Create(newInput("1234567890", "Ali", "0500000000", "2025-01-10"))
	require.NoError(t, err)

	// mutating a returned record must not reach the store
	b.Status = domain.StatusCompleted

	found, ok := s.FindByCredentials("1234567890", "0500000000")
	require.True(t, ok)
	assert.Equal(t, domain.StatusPending, found.Status)
}
