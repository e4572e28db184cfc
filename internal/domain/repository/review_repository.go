package repository

import (
	"justbookit/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *entity.Review) error
	FindByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.Review, error)
	FindByServiceID(db *gorm.DB, serviceID uuid.UUID) ([]entity.Review, error)
	FindAll(db *gorm.DB, page, limit int) ([]entity.Review, int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
