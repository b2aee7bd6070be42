package validation

import (
	"strings"
	"unicode/utf8"

	"hbt-medrefill/internal/core/domain"
)

// Error is a failed admission check. Message carries the fixed
// patient-facing text for the first violated rule.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ValidateBooking runs the ordered admission checks over a patient
// submission and short-circuits at the first failure, so at most one
// reason is ever surfaced per attempt. Checks trim whitespace but the
// submission itself is stored untouched. Phone number and date get a
// presence check only, and duplicate national IDs are allowed; every
// submission creates an independent booking.
func ValidateBooking(in *domain.BookingInput) error {
	nationalID := strings.TrimSpace(in.NationalID)
	if nationalID == "" {
		return &Error{Field: "national_id", Message: domain.MsgNationalIDRequired}
	}
	if utf8.RuneCountInString(nationalID) != domain.NationalIDLength {
		return &Error{Field: "national_id", Message: domain.MsgNationalIDLength}
	}
	if strings.TrimSpace(in.PatientName) == "" {
		return &Error{Field: "patient_name", Message: domain.MsgPatientNameRequired}
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		return &Error{Field: "phone_number", Message: domain.MsgPhoneNumberRequired}
	}
	if strings.TrimSpace(in.AppointmentDate) == "" {
		return &Error{Field: "appointment_date", Message: domain.MsgAppointmentDateRequired}
	}
	return nil
}
