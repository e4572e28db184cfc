package entity

import "errors"

// Cross-entity invariants checked before persistence. Each operation invokes
// the validator for the entity it writes; the errors are sentinel values so
// usecases and handlers can switch on them.
var (
	ErrProviderNotProfessional = errors.New("only professional users can publish services")
	ErrNegativePrice           = errors.New("price must not be negative")
	ErrSelfBooking             = errors.New("users cannot book their own services")
	ErrReviewerMismatch        = errors.New("only the customer who booked the service can leave a review")
	ErrBookingNotCompleted     = errors.New("only completed bookings can be reviewed")
	ErrRatingOutOfRange        = errors.New("rating must be between 1 and 5")
)

// ValidateService checks the invariants for creating or updating a service.
// The provider must already be loaded.
func ValidateService(s *Service, provider *User) error {
	if !provider.IsProfessional {
		return ErrProviderNotProfessional
	}
	if s.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// ValidateBooking checks that the customer is not booking their own service.
func ValidateBooking(b *Booking, service *Service) error {
	if b.CustomerID == service.ProviderID {
		return ErrSelfBooking
	}
	return nil
}

// ValidateReview checks the review guards in order: reviewer identity first,
// then booking status, then rating range. The existence guard (one review per
// booking) lives in the storage layer as a unique index and is surfaced by
// the repository on insert.
func ValidateReview(r *Review, booking *Booking, reviewer *User) error {
	if booking.CustomerID != reviewer.ID {
		return ErrReviewerMismatch
	}
	if !booking.IsCompleted() {
		return ErrBookingNotCompleted
	}
	if r.Rating < 1 || r.Rating > 5 {
		return ErrRatingOutOfRange
	}
	return nil
}
