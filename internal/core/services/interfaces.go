package services

import "hbt-medrefill/internal/core/domain"

// BookingFinder is the read-only store surface available to the
// tracking path. Keeping the interface this narrow makes it
// structurally impossible for a lookup to mutate the store.
type BookingFinder interface {
	FindByCredentials(nationalID, phoneNumber string) (*domain.Booking, bool)
}
