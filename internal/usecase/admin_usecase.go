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
	ErrReviewNotFound = errors.New("review not found")
)

// AdminUpdateUserRequest lives here rather than in dto because only the
// administrative surface may flip the professional and staff flags.
type AdminUpdateUserRequest struct {
	Username       string `json:"username" validate:"omitempty,min=3,max=150"`
	Email          string `json:"email" validate:"omitempty,email"`
	FirstName      string `json:"first_name" validate:"max=150"`
	LastName       string `json:"last_name" validate:"max=150"`
	IsProfessional *bool  `json:"is_professional"`
	IsStaff        *bool  `json:"is_staff"`
}

// AdminUsecase is the record-management surface over the four entities.
type AdminUsecase interface {
	ListUsers(ctx context.Context, page, limit int) ([]dto.UserResponse, int64, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req *AdminUpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	ListBookings(ctx context.Context, page, limit int) ([]dto.BookingResponse, int64, error)
	OverrideBookingStatus(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID uuid.UUID) error
	UpdateService(ctx context.Context, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, serviceID uuid.UUID) error
	ListReviews(ctx context.Context, page, limit int) ([]dto.ReviewResponse, int64, error)
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
	ListAuditLogs(ctx context.Context, page, limit int) (*dto.AuditLogListResponse, error)
}

type adminUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	serviceRepo  repository.ServiceRepository
	bookingRepo  repository.BookingRepository
	reviewRepo   repository.ReviewRepository
	auditLogRepo repository.AuditLogRepository
	auditService service.AuditService
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	serviceRepo repository.ServiceRepository,
	bookingRepo repository.BookingRepository,
	reviewRepo repository.ReviewRepository,
	auditLogRepo repository.AuditLogRepository,
	auditService service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		serviceRepo:  serviceRepo,
		bookingRepo:  bookingRepo,
		reviewRepo:   reviewRepo,
		auditLogRepo: auditLogRepo,
		auditService: auditService,
	}
}

func (u *adminUsecase) ListUsers(ctx context.Context, page, limit int) ([]dto.UserResponse, int64, error) {
	users, total, err := u.userRepo.FindAll(u.db.WithContext(ctx), page, limit)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, 0, err
	}
	return converter.UsersToResponses(users), total, nil
}

// UpdateUser is the account-edit form of the administrative surface; unlike
// profile edit it exposes the professional and staff flags.
func (u *adminUsecase) UpdateUser(ctx context.Context, userID uuid.UUID, req *AdminUpdateUserRequest) (*dto.UserResponse, error) {
	actorID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	oldValue := converter.UserToResponse(user)

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.IsProfessional != nil {
		user.IsProfessional = *req.IsProfessional
	}
	if req.IsStaff != nil {
		user.IsStaff = *req.IsStaff
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user %s: %+v", userID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAccountUpdate, "user", user.ID.String(), oldValue, converter.UserToResponse(user)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *adminUsecase) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	actorID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if _, err := u.userRepo.Delete(tx, userID); err != nil {
		u.log.Warnf("Failed to delete user %s: %+v", userID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionAccountDelete, "user", userID.String(), converter.UserToResponse(user)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *adminUsecase) ListBookings(ctx context.Context, page, limit int) ([]dto.BookingResponse, int64, error) {
	bookings, total, err := u.bookingRepo.FindAll(u.db.WithContext(ctx), page, limit)
	if err != nil {
		u.log.Warnf("Failed to find all bookings: %+v", err)
		return nil, 0, err
	}
	return converter.BookingsToResponses(bookings), total, nil
}

// OverrideBookingStatus is the staff escape hatch over the booking lifecycle;
// it skips the provider/customer ownership rules but still refuses to move a
// terminal booking.
func (u *adminUsecase) OverrideBookingStatus(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	actorID, _ := middleware.GetUserIDFromContext(ctx)

	newStatus := entity.BookingStatus(req.Status)
	if !entity.ValidBookingStatus(newStatus) {
		return nil, ErrInvalidStatus
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
	if booking.IsTerminal() {
		return nil, ErrBookingTerminal
	}

	oldStatus := booking.Status
	if err := u.bookingRepo.UpdateStatus(tx, bookingID, newStatus); err != nil {
		u.log.Warnf("Failed to update booking status %s: %+v", bookingID, err)
		return nil, err
	}
	booking.Status = newStatus

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionBookingStatusChange, "booking", bookingID.String(), string(oldStatus), string(newStatus)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BookingToResponse(booking), nil
}

func (u *adminUsecase) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	actorID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	if _, err := u.bookingRepo.Delete(tx, bookingID); err != nil {
		u.log.Warnf("Failed to delete booking %s: %+v", bookingID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionBookingDelete, "booking", bookingID.String(), converter.BookingToResponse(booking)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// UpdateService is the staff variant of service editing: no ownership check,
// but the price invariant still holds.
func (u *adminUsecase) UpdateService(ctx context.Context, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	actorID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	svc, err := u.serviceRepo.FindByID(tx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", serviceID, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	oldValue := converter.ServiceToResponse(svc)

	if req.Name != "" {
		svc.Name = req.Name
	}
	if req.Description != "" {
		svc.Description = req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}

	if svc.Price.IsNegative() {
		return nil, entity.ErrNegativePrice
	}

	if err := u.serviceRepo.Update(tx, svc); err != nil {
		u.log.Warnf("Failed to update service %s: %+v", serviceID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionServiceUpdate, "service", svc.ID.String(), oldValue, converter.ServiceToResponse(svc)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(svc), nil
}

// DeleteService is the staff variant of service deletion: no ownership check.
func (u *adminUsecase) DeleteService(ctx context.Context, serviceID uuid.UUID) error {
	actorID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	svc, err := u.serviceRepo.FindByID(tx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", serviceID, err)
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}

	if _, err := u.serviceRepo.Delete(tx, serviceID); err != nil {
		u.log.Warnf("Failed to delete service %s: %+v", serviceID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionServiceDelete, "service", serviceID.String(), converter.ServiceToResponse(svc)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *adminUsecase) ListReviews(ctx context.Context, page, limit int) ([]dto.ReviewResponse, int64, error) {
	reviews, total, err := u.reviewRepo.FindAll(u.db.WithContext(ctx), page, limit)
	if err != nil {
		u.log.Warnf("Failed to find all reviews: %+v", err)
		return nil, 0, err
	}
	return converter.ReviewsToResponses(reviews), total, nil
}

func (u *adminUsecase) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	actorID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.reviewRepo.Delete(tx, reviewID)
	if err != nil {
		u.log.Warnf("Failed to delete review %s: %+v", reviewID, err)
		return err
	}
	if affected == 0 {
		return ErrReviewNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionReviewDelete, "review", reviewID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *adminUsecase) ListAuditLogs(ctx context.Context, page, limit int) (*dto.AuditLogListResponse, error) {
	logs, total, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), page, limit)
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: total,
	}, nil
}
