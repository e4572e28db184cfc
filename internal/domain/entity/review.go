package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a one-to-one rating of a completed booking. The unique index on
// BookingID makes the storage layer reject a second review even if two
// requests pass the application-level existence check at the same time.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"booking_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Booking Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
