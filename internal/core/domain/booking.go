package domain

import "time"

// BookingStatus represents the lifecycle status of a refill booking
type BookingStatus string

// Booking statuses. These three are the only reachable states
const (
	StatusPending   BookingStatus = "pending"
	StatusCompleted BookingStatus = "completed"
	StatusRejected  BookingStatus = "rejected"
)

// NationalIDLength is the exact length required for a national ID at submission
const NationalIDLength = 10

// DateLayout is the appointment date format used by the booking form
const DateLayout = "2006-01-02"

// statusLabels maps each status to its patient-facing label
var statusLabels = map[BookingStatus]string{
	StatusPending:   "قيد الانتظار",
	StatusCompleted: "تم الصرف",
	StatusRejected:  "مرفوض",
}

// Valid reports whether s is one of the three reachable statuses
func (s BookingStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the patient-facing label for the status.
// Unknown statuses fall back to the raw value.
func (s BookingStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// BookingInput represents a patient submission before admission
type BookingInput struct {
	NationalID      string `json:"national_id"`
	PatientName     string `json:"patient_name"`
	PhoneNumber     string `json:"phone_number"`
	AppointmentDate string `json:"appointment_date"`
	Notes           string `json:"notes"`
}

// Booking represents a single medication-refill appointment request
type Booking struct {
	ID              string        `json:"id"`
	NationalID      string        `json:"national_id"`
	PatientName     string        `json:"patient_name"`
	PhoneNumber     string        `json:"phone_number"`
	AppointmentDate string        `json:"appointment_date"`
	Notes           string        `json:"notes,omitempty"`
	Status          BookingStatus `json:"status"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	SubmittedAt     time.Time     `json:"submitted_at"`
}

// AppointmentTime parses the appointment date. Bookings with an
// unparseable date sort as the zero time.
func (b *Booking) AppointmentTime() time.Time {
	t, err := time.Parse(DateLayout, b.AppointmentDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// BookingResponse is the API representation of a booking
type BookingResponse struct {
	ID              string        `json:"id"`
	NationalID      string        `json:"national_id"`
	PatientName     string        `json:"patient_name"`
	PhoneNumber     string        `json:"phone_number"`
	AppointmentDate string        `json:"appointment_date"`
	Notes           string        `json:"notes,omitempty"`
	Status          BookingStatus `json:"status"`
	StatusLabel     string        `json:"status_label"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	SubmittedAt     time.Time     `json:"submitted_at"`
}

// ToResponse converts a booking to its API representation
func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		NationalID:      b.NationalID,
		PatientName:     b.PatientName,
		PhoneNumber:     b.PhoneNumber,
		AppointmentDate: b.AppointmentDate,
		Notes:           b.Notes,
		Status:          b.Status,
		StatusLabel:     b.Status.Label(),
		RejectionReason: b.RejectionReason,
		SubmittedAt:     b.SubmittedAt,
	}
}

// BookingCounts holds the derived aggregates shown on the admin panel
type BookingCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Rejected  int `json:"rejected"`
}
