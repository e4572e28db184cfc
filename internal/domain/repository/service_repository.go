package repository

import (
	"justbookit/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error)
	FindAll(db *gorm.DB) ([]entity.Service, error)
	FindByProviderID(db *gorm.DB, providerID uuid.UUID) ([]entity.Service, error)
	Search(db *gorm.DB, filter *entity.ServiceFilter) ([]entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) error
	UpdateAverageRating(db *gorm.DB, id uuid.UUID, rating float64) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
