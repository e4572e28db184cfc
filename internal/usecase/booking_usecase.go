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
	ErrBookingNotFound       = errors.New("booking not found")
	ErrBookingNotAllowed     = errors.New("booking does not belong to you")
	ErrInvalidStatus         = errors.New("invalid booking status")
	ErrBookingTerminal       = errors.New("booking is already completed or cancelled")
	ErrCustomerCanOnlyCancel = errors.New("customers may only cancel their bookings")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, serviceID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error)
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	serviceRepo  repository.ServiceRepository
	userRepo     repository.UserRepository
	mailer       service.Mailer
	auditService service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	serviceRepo repository.ServiceRepository,
	userRepo repository.UserRepository,
	mailer service.Mailer,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:           db,
		log:          log,
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		userRepo:     userRepo,
		mailer:       mailer,
		auditService: auditService,
	}
}

// CreateBooking books a service for the requesting user.
//
// Flow:
// 1. Load the service and the customer
// 2. Reject self-booking (customer owns the service)
// 3. Insert with status PENDING
// 4. Send the confirmation mail best-effort; a mail failure never rolls
//    back the booking
func (u *bookingUsecase) CreateBooking(ctx context.Context, serviceID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

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

	customer, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find customer %s: %+v", userID, err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrUserNotFound
	}

	booking := &entity.Booking{
		ServiceID:  svc.ID,
		CustomerID: customer.ID,
		Date:       req.Date,
		Status:     entity.BookingStatusPending,
	}

	if err := entity.ValidateBooking(booking, svc); err != nil {
		return nil, err
	}

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		if isForeignKeyError(err, "service") {
			return nil, ErrServiceNotFound
		}
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionBookingCreate, "booking", booking.ID.String(), converter.BookingToResponse(booking)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Best-effort confirmation mail (spec treats notification as
	// fire-and-forget; the booking stands even if the relay is down)
	subject := service.BookingConfirmationSubject(svc.Name)
	body := service.BookingConfirmationBody(svc.Name, booking.Date)
	if err := u.mailer.Send(subject, body, customer.Email); err != nil {
		u.log.Warnf("Failed to send booking confirmation to %s (non-fatal): %+v", customer.Email, err)
	}

	u.log.Infof("Booking created: id=%s, service=%s, customer=%s", booking.ID, svc.ID, customer.ID)

	booking.Service = *svc
	return converter.BookingToResponse(booking), nil
}

// GetMyBookings returns all bookings placed by the logged-in user
func (u *bookingUsecase) GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	bookings, err := u.bookingRepo.FindByCustomerID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for customer %s: %+v", userID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// GetDashboard returns the per-role dashboard: professionals see their own
// services and the bookings placed against them, everyone else sees the
// bookings they placed.
func (u *bookingUsecase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	if middleware.IsProfessionalFromContext(ctx) {
		services, err := u.serviceRepo.FindByProviderID(u.db.WithContext(ctx), userID)
		if err != nil {
			u.log.Warnf("Failed to find services for provider %s: %+v", userID, err)
			return nil, err
		}

		bookings, err := u.bookingRepo.FindByProviderID(u.db.WithContext(ctx), userID)
		if err != nil {
			u.log.Warnf("Failed to find bookings for provider %s: %+v", userID, err)
			return nil, err
		}

		return &dto.DashboardResponse{
			Services: converter.ServicesToResponses(services),
			Bookings: converter.BookingsToResponses(bookings),
		}, nil
	}

	bookings, err := u.bookingRepo.FindByCustomerID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for customer %s: %+v", userID, err)
		return nil, err
	}

	return &dto.DashboardResponse{
		Bookings: converter.BookingsToResponses(bookings),
	}, nil
}

// UpdateStatus moves a booking through its lifecycle. The provider of the
// booked service drives PENDING -> CONFIRMED -> COMPLETED/CANCELLED; the
// customer may only cancel. Completed and cancelled bookings never change.
func (u *bookingUsecase) UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

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

	isProvider := booking.Service.ProviderID == userID
	isCustomer := booking.CustomerID == userID
	if !isProvider && !isCustomer {
		return nil, ErrBookingNotAllowed
	}
	if isCustomer && !isProvider && newStatus != entity.BookingStatusCancelled {
		return nil, ErrCustomerCanOnlyCancel
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

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionBookingStatusChange, "booking", booking.ID.String(), string(oldStatus), string(newStatus)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Booking status changed: id=%s, %s -> %s", bookingID, oldStatus, newStatus)
	return converter.BookingToResponse(booking), nil
}
