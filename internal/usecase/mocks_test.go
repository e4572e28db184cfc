package usecase

import (
	"context"
	"io"
	"testing"

	"justbookit/internal/delivery/http/middleware"
	"justbookit/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB wraps a sqlmock connection in gorm so the transaction plumbing
// (Begin/Commit/Rollback) works without a live database. Repository calls
// themselves are mocked out, so only transaction control hits the driver.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, dbMock
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// authedContext builds the context the auth middleware would have produced.
func authedContext(userID uuid.UUID, isProfessional, isStaff bool) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.IsProfessionalKey, isProfessional)
	ctx = context.WithValue(ctx, middleware.IsStaffKey, isStaff)
	return ctx
}

func contextWithoutUser() context.Context {
	return context.Background()
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	return m.Called(db, user).Error(0)
}

func (m *mockUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	args := m.Called(db, username)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindAll(db *gorm.DB, page, limit int) ([]entity.User, int64, error) {
	args := m.Called(db, page, limit)
	var users []entity.User
	if u := args.Get(0); u != nil {
		users = u.([]entity.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepository) Update(db *gorm.DB, user *entity.User) error {
	return m.Called(db, user).Error(0)
}

func (m *mockUserRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockServiceRepository struct {
	mock.Mock
}

func (m *mockServiceRepository) Create(db *gorm.DB, service *entity.Service) error {
	return m.Called(db, service).Error(0)
}

func (m *mockServiceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error) {
	args := m.Called(db, id)
	if s := args.Get(0); s != nil {
		return s.(*entity.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepository) FindAll(db *gorm.DB) ([]entity.Service, error) {
	args := m.Called(db)
	if s := args.Get(0); s != nil {
		return s.([]entity.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepository) FindByProviderID(db *gorm.DB, providerID uuid.UUID) ([]entity.Service, error) {
	args := m.Called(db, providerID)
	if s := args.Get(0); s != nil {
		return s.([]entity.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepository) Search(db *gorm.DB, filter *entity.ServiceFilter) ([]entity.Service, error) {
	args := m.Called(db, filter)
	if s := args.Get(0); s != nil {
		return s.([]entity.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepository) Update(db *gorm.DB, service *entity.Service) error {
	return m.Called(db, service).Error(0)
}

func (m *mockServiceRepository) UpdateAverageRating(db *gorm.DB, id uuid.UUID, rating float64) error {
	return m.Called(db, id, rating).Error(0)
}

func (m *mockServiceRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return m.Called(db, booking).Error(0)
}

func (m *mockBookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(db, id)
	if b := args.Get(0); b != nil {
		return b.(*entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error) {
	args := m.Called(db, customerID)
	if b := args.Get(0); b != nil {
		return b.([]entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) FindByProviderID(db *gorm.DB, providerID uuid.UUID) ([]entity.Booking, error) {
	args := m.Called(db, providerID)
	if b := args.Get(0); b != nil {
		return b.([]entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) FindAll(db *gorm.DB, page, limit int) ([]entity.Booking, int64, error) {
	args := m.Called(db, page, limit)
	var bookings []entity.Booking
	if b := args.Get(0); b != nil {
		bookings = b.([]entity.Booking)
	}
	return bookings, args.Get(1).(int64), args.Error(2)
}

func (m *mockBookingRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.BookingStatus) error {
	return m.Called(db, id, status).Error(0)
}

func (m *mockBookingRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Create(db *gorm.DB, review *entity.Review) error {
	return m.Called(db, review).Error(0)
}

func (m *mockReviewRepository) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.Review, error) {
	args := m.Called(db, bookingID)
	if r := args.Get(0); r != nil {
		return r.(*entity.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepository) FindByServiceID(db *gorm.DB, serviceID uuid.UUID) ([]entity.Review, error) {
	args := m.Called(db, serviceID)
	if r := args.Get(0); r != nil {
		return r.([]entity.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepository) FindAll(db *gorm.DB, page, limit int) ([]entity.Review, int64, error) {
	args := m.Called(db, page, limit)
	var reviews []entity.Review
	if r := args.Get(0); r != nil {
		reviews = r.([]entity.Review)
	}
	return reviews, args.Get(1).(int64), args.Error(2)
}

func (m *mockReviewRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

// recordingMailer captures outgoing mail instead of sending it.
type recordingMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	Subject string
	Body    string
	To      []string
}

func (m *recordingMailer) Send(subject, body string, to ...string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{Subject: subject, Body: body, To: to})
	return nil
}

// noopAuditService satisfies the audit dependency without writing anywhere.
type noopAuditService struct{}

func (noopAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return nil
}

func (noopAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return nil
}

func (noopAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return nil
}
