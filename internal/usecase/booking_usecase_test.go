package usecase

import (
	"testing"
	"time"

	"justbookit/internal/delivery/dto"
	"justbookit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking_Success(t *testing.T) {
	db, dbMock := newTestDB(t)
	bookingRepo := new(mockBookingRepository)
	serviceRepo := new(mockServiceRepository)
	userRepo := new(mockUserRepository)
	mailer := &recordingMailer{}
	u := NewBookingUsecase(db, silentLogger(), bookingRepo, serviceRepo, userRepo, mailer, noopAuditService{})

	providerID := uuid.New()
	customerID := uuid.New()
	serviceID := uuid.New()
	date := time.Now().Add(48 * time.Hour)

	svc := &entity.Service{ID: serviceID, Name: "Deep Clean", Price: decimal.NewFromInt(80), ProviderID: providerID}
	customer := &entity.User{ID: customerID, Username: "bob", Email: "bob@example.com"}

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()
	serviceRepo.On("FindByID", mock.Anything, serviceID).Return(svc, nil)
	userRepo.On("FindByID", mock.Anything, customerID).Return(customer, nil)
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)

	resp, err := u.CreateBooking(authedContext(customerID, false, false), serviceID, &dto.CreateBookingRequest{Date: date})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)
	assert.Equal(t, serviceID, resp.ServiceID)
	assert.Equal(t, customerID, resp.CustomerID)

	// Confirmation mail goes to the customer
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"bob@example.com"}, mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].Subject, "Deep Clean")

	bookingRepo.AssertExpectations(t)
}

func TestCreateBooking_SelfBooking(t *testing.T) {
	db, dbMock := newTestDB(t)
	bookingRepo := new(mockBookingRepository)
	serviceRepo := new(mockServiceRepository)
	userRepo := new(mockUserRepository)
	mailer := &recordingMailer{}
	u := NewBookingUsecase(db, silentLogger(), bookingRepo, serviceRepo, userRepo, mailer, noopAuditService{})

	providerID := uuid.New()
	serviceID := uuid.New()

	svc := &entity.Service{ID: serviceID, Name: "Massage", ProviderID: providerID}
	provider := &entity.User{ID: providerID, IsProfessional: true, Email: "pro@example.com"}

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()
	serviceRepo.On("FindByID", mock.Anything, serviceID).Return(svc, nil)
	userRepo.On("FindByID", mock.Anything, providerID).Return(provider, nil)

	resp, err := u.CreateBooking(authedContext(providerID, true, false), serviceID, &dto.CreateBookingRequest{Date: time.Now()})
	assert.ErrorIs(t, err, entity.ErrSelfBooking)
	assert.Nil(t, resp)

	// Nothing persisted, nothing mailed
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, mailer.sent)
}

func TestCreateBooking_ServiceNotFound(t *testing.T) {
	db, dbMock := newTestDB(t)
	bookingRepo := new(mockBookingRepository)
	serviceRepo := new(mockServiceRepository)
	userRepo := new(mockUserRepository)
	u := NewBookingUsecase(db, silentLogger(), bookingRepo, serviceRepo, userRepo, &recordingMailer{}, noopAuditService{})

	serviceID := uuid.New()

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()
	serviceRepo.On("FindByID", mock.Anything, serviceID).Return(nil, nil)

	resp, err := u.CreateBooking(authedContext(uuid.New(), false, false), serviceID, &dto.CreateBookingRequest{Date: time.Now()})
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Nil(t, resp)
}

// A dead mail relay must not undo a committed booking.
func TestCreateBooking_MailFailureDoesNotFailBooking(t *testing.T) {
	db, dbMock := newTestDB(t)
	bookingRepo := new(mockBookingRepository)
	serviceRepo := new(mockServiceRepository)
	userRepo := new(mockUserRepository)
	mailer := &recordingMailer{err: assert.AnError}
	u := NewBookingUsecase(db, silentLogger(), bookingRepo, serviceRepo, userRepo, mailer, noopAuditService{})

	customerID := uuid.New()
	serviceID := uuid.New()
	svc := &entity.Service{ID: serviceID, Name: "Tutoring", ProviderID: uuid.New()}
	customer := &entity.User{ID: customerID, Email: "bob@example.com"}

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()
	serviceRepo.On("FindByID", mock.Anything, serviceID).Return(svc, nil)
	userRepo.On("FindByID", mock.Anything, customerID).Return(customer, nil)
	bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)

	resp, err := u.CreateBooking(authedContext(customerID, false, false), serviceID, &dto.CreateBookingRequest{Date: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)
}

func TestCreateBooking_NotAuthenticated(t *testing.T) {
	db, _ := newTestDB(t)
	u := NewBookingUsecase(db, silentLogger(), new(mockBookingRepository), new(mockServiceRepository), new(mockUserRepository), &recordingMailer{}, noopAuditService{})

	resp, err := u.CreateBooking(contextWithoutUser(), uuid.New(), &dto.CreateBookingRequest{Date: time.Now()})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Nil(t, resp)
}

func TestUpdateStatus_ProviderConfirms(t *testing.T) {
	db, dbMock := newTestDB(t)
	bookingRepo := new(mockBookingRepository)
	u := NewBookingUsecase(db, silentLogger(), bookingRepo, new(mockServiceRepository), new(mockUserRepository), &recordingMailer{}, noopAuditService{})

	providerID := uuid.New()
	bookingID := uuid.New()
	booking := &entity.Booking{
		ID:         bookingID,
		CustomerID: uuid.New(),
		Status:     entity.BookingStatusPending,
		Service:    entity.Service{ProviderID: providerID},
	}

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()
	bookingRepo.On("FindByID", mock.Anything, bookingID).Return(booking, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, bookingID, entity.BookingStatusConfirmed).Return(nil)

	resp, err := u.UpdateStatus(authedContext(providerID, true, false), bookingID, &dto.UpdateBookingStatusRequest{Status: "CONFIRMED"})
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
	bookingRepo.AssertExpectations(t)
}

func TestUpdateStatus_CustomerCancels(t *testing.T) {
	db, dbMock := newTestDB(t)
	bookingRepo := new(mockBookingRepository)
	u := NewBookingUsecase(db, silentLogger(), bookingRepo, new(mockServiceRepository), new(mockUserRepository), &recordingMailer{}, noopAuditService{})

	customerID := uuid.New()
	bookingID := uuid.New()
	booking := &entity.Booking{
		ID:         bookingID,
		CustomerID: customerID,
		Status:     entity.BookingStatusPending,
		Service:    entity.Service{ProviderID: uuid.New()},
	}

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()
	bookingRepo.On("FindByID", mock.Anything, bookingID).Return(booking, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, bookingID, entity.BookingStatusCancelled).Return(nil)

	resp, err := u.UpdateStatus(authedContext(customerID, false, false), bookingID, &dto.UpdateBookingStatusRequest{Status: "CANCELLED"})
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
}

func TestUpdateStatus_CustomerCannotConfirm(t *testing.T) {
	db, dbMock := newTestDB(t)
	bookingRepo := new(mockBookingRepository)
	u := NewBookingUsecase(db, silentLogger(), bookingRepo, new(mockServiceRepository), new(mockUserRepository), &recordingMailer{}, noopAuditService{})

	customerID := uuid.New()
	bookingID := uuid.New()
	booking := &entity.Booking{
		ID:         bookingID,
		CustomerID: customerID,
		Status:     entity.BookingStatusPending,
		Service:    entity.Service{ProviderID: uuid.New()},
	}

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()
	bookingRepo.On("FindByID", mock.Anything, bookingID).Return(booking, nil)

	resp, err := u.UpdateStatus(authedContext(customerID, false, false), bookingID, &dto.UpdateBookingStatusRequest{Status: "CONFIRMED"})
	assert.ErrorIs(t, err, ErrCustomerCanOnlyCancel)
	assert.Nil(t, resp)
	bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_StrangerRejected(t *testing.T) {
	db, dbMock := newTestDB(t)
	bookingRepo := new(mockBookingRepository)
	u := NewBookingUsecase(db, silentLogger(), bookingRepo, new(mockServiceRepository), new(mockUserRepository), &recordingMailer{}, noopAuditService{})

	bookingID := uuid.New()
	booking := &entity.Booking{
		ID:         bookingID,
		CustomerID: uuid.New(),
		Status:     entity.BookingStatusPending,
		Service:    entity.Service{ProviderID: uuid.New()},
	}

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()
	bookingRepo.On("FindByID", mock.Anything, bookingID).Return(booking, nil)

	resp, err := u.UpdateStatus(authedContext(uuid.New(), false, false), bookingID, &dto.UpdateBookingStatusRequest{Status: "CANCELLED"})
	assert.ErrorIs(t, err, ErrBookingNotAllowed)
	assert.Nil(t, resp)
}

func TestUpdateStatus_TerminalBookingRefused(t *testing.T) {
	for _, status := range []entity.BookingStatus{entity.BookingStatusCompleted, entity.BookingStatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			db, dbMock := newTestDB(t)
			bookingRepo := new(mockBookingRepository)
			u := NewBookingUsecase(db, silentLogger(), bookingRepo, new(mockServiceRepository), new(mockUserRepository), &recordingMailer{}, noopAuditService{})

			providerID := uuid.New()
			bookingID := uuid.New()
			booking := &entity.Booking{
				ID:         bookingID,
				CustomerID: uuid.New(),
				Status:     status,
				Service:    entity.Service{ProviderID: providerID},
			}

			dbMock.ExpectBegin()
			dbMock.ExpectRollback()
			bookingRepo.On("FindByID", mock.Anything, bookingID).Return(booking, nil)

			resp, err := u.UpdateStatus(authedContext(providerID, true, false), bookingID, &dto.UpdateBookingStatusRequest{Status: "CONFIRMED"})
			assert.ErrorIs(t, err, ErrBookingTerminal)
			assert.Nil(t, resp)
		})
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	db, _ := newTestDB(t)
	u := NewBookingUsecase(db, silentLogger(), new(mockBookingRepository), new(mockServiceRepository), new(mockUserRepository), &recordingMailer{}, noopAuditService{})

	resp, err := u.UpdateStatus(authedContext(uuid.New(), false, false), uuid.New(), &dto.UpdateBookingStatusRequest{Status: "APPROVED"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Nil(t, resp)
}

func TestGetDashboard_Customer(t *testing.T) {
	db, _ := newTestDB(t)
	bookingRepo := new(mockBookingRepository)
	serviceRepo := new(mockServiceRepository)
	u := NewBookingUsecase(db, silentLogger(), bookingRepo, serviceRepo, new(mockUserRepository), &recordingMailer{}, noopAuditService{})

	customerID := uuid.New()
	bookings := []entity.Booking{
		{ID: uuid.New(), CustomerID: customerID, Status: entity.BookingStatusPending},
	}
	bookingRepo.On("FindByCustomerID", mock.Anything, customerID).Return(bookings, nil)

	resp, err := u.GetDashboard(authedContext(customerID, false, false))
	require.NoError(t, err)
	assert.Empty(t, resp.Services)
	assert.Len(t, resp.Bookings, 1)
	serviceRepo.AssertNotCalled(t, "FindByProviderID", mock.Anything, mock.Anything)
}

func TestGetDashboard_Professional(t *testing.T) {
	db, _ := newTestDB(t)
	bookingRepo := new(mockBookingRepository)
	serviceRepo := new(mockServiceRepository)
	u := NewBookingUsecase(db, silentLogger(), bookingRepo, serviceRepo, new(mockUserRepository), &recordingMailer{}, noopAuditService{})

	providerID := uuid.New()
	services := []entity.Service{
		{ID: uuid.New(), Name: "Plumbing", ProviderID: providerID},
	}
	bookings := []entity.Booking{
		{ID: uuid.New(), Status: entity.BookingStatusPending},
		{ID: uuid.New(), Status: entity.BookingStatusConfirmed},
	}
	serviceRepo.On("FindByProviderID", mock.Anything, providerID).Return(services, nil)
	bookingRepo.On("FindByProviderID", mock.Anything, providerID).Return(bookings, nil)

	resp, err := u.GetDashboard(authedContext(providerID, true, false))
	require.NoError(t, err)
	assert.Len(t, resp.Services, 1)
	assert.Len(t, resp.Bookings, 2)
}

func TestGetMyBookings(t *testing.T) {
	db, _ := newTestDB(t)
	bookingRepo := new(mockBookingRepository)
	u := NewBookingUsecase(db, silentLogger(), bookingRepo, new(mockServiceRepository), new(mockUserRepository), &recordingMailer{}, noopAuditService{})

	customerID := uuid.New()
	bookingRepo.On("FindByCustomerID", mock.Anything, customerID).Return([]entity.Booking{
		{ID: uuid.New(), CustomerID: customerID},
		{ID: uuid.New(), CustomerID: customerID},
	}, nil)

	resp, err := u.GetMyBookings(authedContext(customerID, false, false))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Bookings, 2)
}
