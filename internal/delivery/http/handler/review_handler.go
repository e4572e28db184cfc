package handler

import (
	"encoding/json"
	"net/http"

	"justbookit/internal/delivery/dto"
	"justbookit/internal/domain/entity"
	"justbookit/internal/usecase"
	"justbookit/pkg/response"
	"justbookit/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
	validator     *validator.CustomValidator
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, validator *validator.CustomValidator) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		validator:     validator,
	}
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.CreateReview(r.Context(), bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case entity.ErrReviewerMismatch:
			response.Forbidden(w, "You don't have permission to review this service")
		case entity.ErrBookingNotCompleted:
			response.Forbidden(w, "Only completed bookings can be reviewed")
		case usecase.ErrAlreadyReviewed:
			response.Forbidden(w, "Booking has already been reviewed")
		case entity.ErrRatingOutOfRange:
			response.Error(w, http.StatusBadRequest, "Rating must be between 1 and 5", nil)
		default:
			response.InternalServerError(w, "Failed to create review")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Review created successfully", review)
}
