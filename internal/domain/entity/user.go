package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account. Any user can book services as a customer;
// professional users additionally own the services they publish.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username       string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"type:text;not null" json:"-"`
	FirstName      string    `gorm:"type:varchar(150)" json:"first_name,omitempty"`
	LastName       string    `gorm:"type:varchar(150)" json:"last_name,omitempty"`
	IsProfessional bool      `gorm:"not null;default:false;index" json:"is_professional"`
	IsStaff        bool      `gorm:"not null;default:false" json:"is_staff"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Services []Service `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE" json:"services,omitempty"`
	Bookings []Booking `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`
}

func (User) TableName() string {
	return "users"
}
