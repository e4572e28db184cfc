package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"justbookit/internal/delivery/dto"
	"justbookit/internal/domain/entity"
	"justbookit/internal/usecase"
	"justbookit/pkg/response"
	"justbookit/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	validator    *validator.CustomValidator
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

func pagination(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func meta(page, limit int, total int64) *response.Meta {
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	users, total, err := h.adminUsecase.ListUsers(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list users")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Users retrieved successfully", users, meta(page, limit, total))
}

func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var req usecase.AdminUpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.adminUsecase.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrUsernameAlreadyExists:
			response.Conflict(w, "Username already exists")
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		default:
			response.InternalServerError(w, "Failed to update user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	if err := h.adminUsecase.DeleteUser(r.Context(), userID); err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to delete user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User deleted successfully", nil)
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	bookings, total, err := h.adminUsecase.ListBookings(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list bookings")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Bookings retrieved successfully", bookings, meta(page, limit, total))
}

func (h *AdminHandler) OverrideBookingStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.adminUsecase.OverrideBookingStatus(r.Context(), bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid booking status", nil)
		case usecase.ErrBookingTerminal:
			response.Conflict(w, "Booking is already completed or cancelled")
		default:
			response.InternalServerError(w, "Failed to update booking status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking status updated successfully", booking)
}

func (h *AdminHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	if err := h.adminUsecase.DeleteBooking(r.Context(), bookingID); err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		default:
			response.InternalServerError(w, "Failed to delete booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking deleted successfully", nil)
}

func (h *AdminHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	var req dto.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	svc, err := h.adminUsecase.UpdateService(r.Context(), serviceID, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case entity.ErrNegativePrice:
			response.Error(w, http.StatusBadRequest, "Price must not be negative", nil)
		default:
			response.InternalServerError(w, "Failed to update service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", svc)
}

func (h *AdminHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	if err := h.adminUsecase.DeleteService(r.Context(), serviceID); err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to delete service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}

func (h *AdminHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	reviews, total, err := h.adminUsecase.ListReviews(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list reviews")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Reviews retrieved successfully", reviews, meta(page, limit, total))
}

func (h *AdminHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reviewID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid review ID", nil)
		return
	}

	if err := h.adminUsecase.DeleteReview(r.Context(), reviewID); err != nil {
		switch err {
		case usecase.ErrReviewNotFound:
			response.NotFound(w, "Review not found")
		default:
			response.InternalServerError(w, "Failed to delete review")
		}
		return
	}

	response.Success(w, http.StatusOK, "Review deleted successfully", nil)
}

func (h *AdminHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	logs, err := h.adminUsecase.ListAuditLogs(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", logs.Logs, meta(page, limit, logs.Total))
}
