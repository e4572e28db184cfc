package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"justbookit/internal/delivery/dto"
	"justbookit/internal/delivery/http/handler"
	"justbookit/internal/domain/entity"
	"justbookit/internal/usecase"
	"justbookit/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReviewUsecase struct {
	mock.Mock
}

func (m *mockReviewUsecase) CreateReview(ctx context.Context, bookingID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, bookingID, req)
	if r := args.Get(0); r != nil {
		return r.(*dto.ReviewResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func postReview(t *testing.T, h *handler.ReviewHandler, bookingID, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+bookingID+"/review", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": bookingID})
	w := httptest.NewRecorder()
	h.CreateReview(w, req)
	return w
}

func TestCreateReviewHandler_Success(t *testing.T) {
	uc := new(mockReviewUsecase)
	h := handler.NewReviewHandler(uc, validator.NewValidator())

	bookingID := uuid.New()
	uc.On("CreateReview", mock.Anything, bookingID, mock.Anything).Return(&dto.ReviewResponse{
		ID:        uuid.New(),
		BookingID: bookingID,
		Rating:    5,
		Comment:   "excellent",
	}, nil)

	w := postReview(t, h, bookingID.String(), `{"rating": 5, "comment": "excellent"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, true, resp["success"])
}

func TestCreateReviewHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"booking not found", usecase.ErrBookingNotFound, http.StatusNotFound},
		{"reviewer mismatch", entity.ErrReviewerMismatch, http.StatusForbidden},
		{"booking not completed", entity.ErrBookingNotCompleted, http.StatusForbidden},
		{"already reviewed", usecase.ErrAlreadyReviewed, http.StatusForbidden},
		{"rating out of range", entity.ErrRatingOutOfRange, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockReviewUsecase)
			h := handler.NewReviewHandler(uc, validator.NewValidator())

			bookingID := uuid.New()
			uc.On("CreateReview", mock.Anything, bookingID, mock.Anything).Return(nil, tt.err)

			w := postReview(t, h, bookingID.String(), `{"rating": 3, "comment": "ok"}`)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCreateReviewHandler_InvalidBookingID(t *testing.T) {
	h := handler.NewReviewHandler(new(mockReviewUsecase), validator.NewValidator())

	w := postReview(t, h, "not-a-uuid", `{"rating": 3, "comment": "ok"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// A zero or missing rating never reaches the usecase; the request validator
// rejects it first.
func TestCreateReviewHandler_ValidationRejectsBadRating(t *testing.T) {
	uc := new(mockReviewUsecase)
	h := handler.NewReviewHandler(uc, validator.NewValidator())

	w := postReview(t, h, uuid.New().String(), `{"rating": 7, "comment": "ok"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything, mock.Anything)
}
