package repository

import (
	"justbookit/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error)
	FindByProviderID(db *gorm.DB, providerID uuid.UUID) ([]entity.Booking, error)
	FindAll(db *gorm.DB, page, limit int) ([]entity.Booking, int64, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.BookingStatus) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
