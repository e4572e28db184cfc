package repository

import (
	"errors"

	"justbookit/internal/domain/entity"
	domainRepo "justbookit/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reviewRepository struct{}

func NewReviewRepository() domainRepo.ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *entity.Review) error {
	return db.Create(review).Error
}

func (r *reviewRepository) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	err := db.Where("booking_id = ?", bookingID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// FindByServiceID returns every review attached to a booking of the service.
// The rating recompute derives the mean from this set.
func (r *reviewRepository) FindByServiceID(db *gorm.DB, serviceID uuid.UUID) ([]entity.Review, error) {
	var reviews []entity.Review
	err := db.Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("bookings.service_id = ?", serviceID).
		Order("reviews.created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindAll(db *gorm.DB, page, limit int) ([]entity.Review, int64, error) {
	var reviews []entity.Review
	var total int64

	if err := db.Model(&entity.Review{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Preload("Booking.Service").
		Limit(limit).Offset(offset).Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Review{})
	return result.RowsAffected, result.Error
}
