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
	ErrServiceNotFound  = errors.New("service not found")
	ErrNotServiceOwner  = errors.New("service does not belong to you")
	ErrNotAuthenticated = errors.New("user not found in context")
)

type ServiceUsecase interface {
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetService(ctx context.Context, serviceID uuid.UUID) (*dto.ServiceDetailResponse, error)
	ListServices(ctx context.Context) (*dto.ServiceListResponse, error)
	SearchServices(ctx context.Context, query string) (*dto.ServiceListResponse, error)
	UpdateService(ctx context.Context, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, serviceID uuid.UUID) error
}

type serviceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	serviceRepo  repository.ServiceRepository
	reviewRepo   repository.ReviewRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) ServiceUsecase {
	return &serviceUsecase{
		db:           db,
		log:          log,
		serviceRepo:  serviceRepo,
		reviewRepo:   reviewRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// CreateService publishes a new service owned by the requesting user.
// The provider must be a professional account; the average rating always
// starts at zero and only the review recompute moves it.
func (u *serviceUsecase) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	provider, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", userID, err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrUserNotFound
	}

	svc := &entity.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ProviderID:  provider.ID,
	}

	if err := entity.ValidateService(svc, provider); err != nil {
		return nil, err
	}

	if err := u.serviceRepo.Create(tx, svc); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionServiceCreate, "service", svc.ID.String(), converter.ServiceToResponse(svc)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Service created: id=%s, provider=%s", svc.ID, provider.ID)
	return converter.ServiceToResponse(svc), nil
}

// GetService returns the service detail page payload: the service plus every
// review left on its bookings.
func (u *serviceUsecase) GetService(ctx context.Context, serviceID uuid.UUID) (*dto.ServiceDetailResponse, error) {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", serviceID, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	reviews, err := u.reviewRepo.FindByServiceID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find reviews for service %s: %+v", serviceID, err)
		return nil, err
	}

	return &dto.ServiceDetailResponse{
		Service: *converter.ServiceToResponse(svc),
		Reviews: converter.ReviewsToResponses(reviews),
	}, nil
}

func (u *serviceUsecase) ListServices(ctx context.Context) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find services: %+v", err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

// SearchServices matches the query case-insensitively as a substring of
// name or description. No tokenization, no ranking.
func (u *serviceUsecase) SearchServices(ctx context.Context, query string) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.Search(u.db.WithContext(ctx), &entity.ServiceFilter{Query: query})
	if err != nil {
		u.log.Warnf("Failed to search services: %+v", err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *serviceUsecase) UpdateService(ctx context.Context, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
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
	if svc.ProviderID != userID {
		return nil, ErrNotServiceOwner
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

	if err := entity.ValidateService(svc, &svc.Provider); err != nil {
		return nil, err
	}

	if err := u.serviceRepo.Update(tx, svc); err != nil {
		u.log.Warnf("Failed to update service %s: %+v", serviceID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionServiceUpdate, "service", svc.ID.String(), oldValue, converter.ServiceToResponse(svc)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(svc), nil
}

// DeleteService removes a service; its bookings and their reviews cascade.
func (u *serviceUsecase) DeleteService(ctx context.Context, serviceID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

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
	if svc.ProviderID != userID {
		return ErrNotServiceOwner
	}

	if _, err := u.serviceRepo.Delete(tx, serviceID); err != nil {
		u.log.Warnf("Failed to delete service %s: %+v", serviceID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionServiceDelete, "service", serviceID.String(), converter.ServiceToResponse(svc)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
