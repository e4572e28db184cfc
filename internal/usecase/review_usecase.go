package usecase

import (
	"context"
	"errors"

	"justbookit/internal/converter"
	"justbookit/internal/delivery/dto"
	"justbookit/internal/delivery/http/middleware"
	"justbookit/internal/domain/entity"
	"justbookit/internal/domain/repository"
	"justbookit/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAlreadyReviewed = errors.New("booking has already been reviewed")
)

type ReviewUsecase interface {
	CreateReview(ctx context.Context, bookingID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
}

type reviewUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reviewRepo   repository.ReviewRepository
	bookingRepo  repository.BookingRepository
	serviceRepo  repository.ServiceRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	bookingRepo repository.BookingRepository,
	serviceRepo repository.ServiceRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) ReviewUsecase {
	return &reviewUsecase{
		db:           db,
		log:          log,
		reviewRepo:   reviewRepo,
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// CreateReview attaches a one-time review to a completed booking and
// recomputes the service's average rating.
//
// Guards, in order, each with its own failure:
// 1. the requester must be the booking's customer
// 2. the booking must be COMPLETED
// 3. the booking must not already be reviewed
//
// The third guard is also enforced by the unique index on booking_id, so a
// second writer racing past the application-level check loses at insert time
// and gets the same error. Insert and recompute share one transaction.
func (u *reviewUsecase) CreateReview(ctx context.Context, bookingID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	reviewer, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find reviewer %s: %+v", userID, err)
		return nil, err
	}
	if reviewer == nil {
		return nil, ErrUserNotFound
	}

	review := &entity.Review{
		BookingID: booking.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := entity.ValidateReview(review, booking, reviewer); err != nil {
		return nil, err
	}

	if booking.Review != nil {
		return nil, ErrAlreadyReviewed
	}

	if err := u.reviewRepo.Create(tx, review); err != nil {
		if isDuplicateKeyError(err, "booking_id") {
			return nil, ErrAlreadyReviewed
		}
		u.log.Warnf("Failed to create review: %+v", err)
		return nil, err
	}

	if err := u.recomputeServiceRating(tx, booking.ServiceID); err != nil {
		u.log.Warnf("Failed to recompute rating for service %s: %+v", booking.ServiceID, err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionReviewCreate, "review", review.ID.String(), converter.ReviewToResponse(review)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Review created: id=%s, booking=%s, rating=%d", review.ID, booking.ID, review.Rating)
	return converter.ReviewToResponse(review), nil
}

// recomputeServiceRating derives the average rating from the current review
// rows. An empty set leaves the stored value untouched; the recompute never
// accumulates deltas, so re-running it is always safe.
func (u *reviewUsecase) recomputeServiceRating(tx *gorm.DB, serviceID uuid.UUID) error {
	reviews, err := u.reviewRepo.FindByServiceID(tx, serviceID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}

	return u.serviceRepo.UpdateAverageRating(tx, serviceID, AverageRating(reviews))
}

// AverageRating computes the unweighted mean of a set of review ratings.
// The caller guarantees the set is non-empty.
func AverageRating(reviews []entity.Review) float64 {
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(reviews))
}
