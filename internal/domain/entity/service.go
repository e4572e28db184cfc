package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service represents a bookable service published by a professional user.
// AverageRating is derived from reviews and never set directly by callers.
type Service struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ProviderID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"provider_id"`
	AverageRating float64         `gorm:"not null;default:0" json:"average_rating"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Provider User      `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE" json:"provider,omitempty"`
	Bookings []Booking `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
