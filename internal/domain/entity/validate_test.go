package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateService(t *testing.T) {
	professional := &User{ID: uuid.New(), IsProfessional: true}
	customer := &User{ID: uuid.New(), IsProfessional: false}

	tests := []struct {
		name     string
		service  *Service
		provider *User
		wantErr  error
	}{
		{
			name:     "professional with positive price",
			service:  &Service{Name: "Haircut", Price: decimal.NewFromInt(25)},
			provider: professional,
			wantErr:  nil,
		},
		{
			name:     "professional with zero price",
			service:  &Service{Name: "Consultation", Price: decimal.Zero},
			provider: professional,
			wantErr:  nil,
		},
		{
			name:     "non-professional provider",
			service:  &Service{Name: "Haircut", Price: decimal.NewFromInt(25)},
			provider: customer,
			wantErr:  ErrProviderNotProfessional,
		},
		{
			name:     "negative price",
			service:  &Service{Name: "Haircut", Price: decimal.NewFromInt(-1)},
			provider: professional,
			wantErr:  ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateService(tt.service, tt.provider)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateBooking(t *testing.T) {
	providerID := uuid.New()
	customerID := uuid.New()
	service := &Service{ID: uuid.New(), ProviderID: providerID}

	err := ValidateBooking(&Booking{CustomerID: customerID}, service)
	assert.NoError(t, err)

	err = ValidateBooking(&Booking{CustomerID: providerID}, service)
	assert.ErrorIs(t, err, ErrSelfBooking)
}

func TestValidateReview(t *testing.T) {
	customerID := uuid.New()
	reviewer := &User{ID: customerID}
	stranger := &User{ID: uuid.New()}

	completed := &Booking{CustomerID: customerID, Status: BookingStatusCompleted}
	pending := &Booking{CustomerID: customerID, Status: BookingStatusPending}

	tests := []struct {
		name     string
		review   *Review
		booking  *Booking
		reviewer *User
		wantErr  error
	}{
		{
			name:     "valid review",
			review:   &Review{Rating: 4, Comment: "great"},
			booking:  completed,
			reviewer: reviewer,
			wantErr:  nil,
		},
		{
			name:     "reviewer is not the customer",
			review:   &Review{Rating: 4},
			booking:  completed,
			reviewer: stranger,
			wantErr:  ErrReviewerMismatch,
		},
		{
			name:     "booking not completed",
			review:   &Review{Rating: 4},
			booking:  pending,
			reviewer: reviewer,
			wantErr:  ErrBookingNotCompleted,
		},
		{
			name:     "rating below range",
			review:   &Review{Rating: 0},
			booking:  completed,
			reviewer: reviewer,
			wantErr:  ErrRatingOutOfRange,
		},
		{
			name:     "rating above range",
			review:   &Review{Rating: 6},
			booking:  completed,
			reviewer: reviewer,
			wantErr:  ErrRatingOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReview(tt.review, tt.booking, tt.reviewer)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// The identity guard must win over the status guard when both fail: a
// stranger poking at someone else's pending booking learns nothing about
// its state.
func TestValidateReview_GuardOrder(t *testing.T) {
	booking := &Booking{CustomerID: uuid.New(), Status: BookingStatusPending}
	stranger := &User{ID: uuid.New()}

	err := ValidateReview(&Review{Rating: 4}, booking, stranger)
	assert.ErrorIs(t, err, ErrReviewerMismatch)
}

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled} {
		assert.True(t, ValidBookingStatus(s), string(s))
	}

	assert.False(t, ValidBookingStatus("APPROVED"))
	assert.False(t, ValidBookingStatus("pending"))
	assert.False(t, ValidBookingStatus(""))
}

func TestBookingIsTerminal(t *testing.T) {
	assert.False(t, (&Booking{Status: BookingStatusPending}).IsTerminal())
	assert.False(t, (&Booking{Status: BookingStatusConfirmed}).IsTerminal())
	assert.True(t, (&Booking{Status: BookingStatusCompleted}).IsTerminal())
	assert.True(t, (&Booking{Status: BookingStatusCancelled}).IsTerminal())
}
