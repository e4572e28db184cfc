package repository

import (
	"errors"

	"justbookit/internal/domain/entity"
	domainRepo "justbookit/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Service.Provider").Preload("Customer").Preload("Review").
		Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Service.Provider").Preload("Review").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByProviderID returns bookings placed against any service owned by the
// given provider. Feeds the professional dashboard.
func (r *bookingRepository) FindByProviderID(db *gorm.DB, providerID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Service").Preload("Customer").
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("services.provider_id = ?", providerID).
		Order("bookings.created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindAll(db *gorm.DB, page, limit int) ([]entity.Booking, int64, error) {
	var bookings []entity.Booking
	var total int64

	if err := db.Model(&entity.Booking{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Preload("Service").Preload("Customer").
		Limit(limit).Offset(offset).Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (r *bookingRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.BookingStatus) error {
	return db.Model(&entity.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *bookingRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Booking{})
	return result.RowsAffected, result.Error
}
