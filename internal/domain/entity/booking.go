package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle tag on a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ValidBookingStatus reports whether s is one of the four lifecycle statuses.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking represents a customer booking against a service
type Booking struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ServiceID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"service_id"`
	CustomerID uuid.UUID     `gorm:"type:uuid;not null;index" json:"customer_id"`
	Date       time.Time     `gorm:"not null" json:"date"`
	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Service  Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Customer User    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Review   *Review `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"review,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsPending checks if booking is in pending status
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// IsCompleted checks if booking is completed
func (b *Booking) IsCompleted() bool {
	return b.Status == BookingStatusCompleted
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// IsTerminal reports whether the booking can no longer change status.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}
