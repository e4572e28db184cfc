package repository

import (
	"errors"

	"justbookit/internal/domain/entity"
	domainRepo "justbookit/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceRepository struct{}

func NewServiceRepository() domainRepo.ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) Create(db *gorm.DB, service *entity.Service) error {
	return db.Create(service).Error
}

func (r *serviceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error) {
	var service entity.Service
	err := db.Preload("Provider").Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) FindAll(db *gorm.DB) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Preload("Provider").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindByProviderID(db *gorm.DB, providerID uuid.UUID) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Where("provider_id = ?", providerID).Order("created_at DESC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

// Search matches the query as a case-insensitive substring against name or
// description. No ranking; results come back in storage order.
func (r *serviceRepository) Search(db *gorm.DB, filter *entity.ServiceFilter) ([]entity.Service, error) {
	var services []entity.Service
	query := db.Preload("Provider")

	if filter != nil {
		if filter.Query != "" {
			pattern := "%" + filter.Query + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
		}
		if filter.ProviderID != "" {
			query = query.Where("provider_id = ?", filter.ProviderID)
		}
	}

	if err := query.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) Update(db *gorm.DB, service *entity.Service) error {
	return db.Save(service).Error
}

func (r *serviceRepository) UpdateAverageRating(db *gorm.DB, id uuid.UUID, rating float64) error {
	return db.Model(&entity.Service{}).
		Where("id = ?", id).
		Update("average_rating", rating).Error
}

func (r *serviceRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Service{})
	return result.RowsAffected, result.Error
}
