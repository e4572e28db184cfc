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

type ServiceHandler struct {
	serviceUsecase usecase.ServiceUsecase
	validator      *validator.CustomValidator
}

func NewServiceHandler(serviceUsecase usecase.ServiceUsecase, validator *validator.CustomValidator) *ServiceHandler {
	return &ServiceHandler{
		serviceUsecase: serviceUsecase,
		validator:      validator,
	}
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	svc, err := h.serviceUsecase.CreateService(r.Context(), &req)
	if err != nil {
		switch err {
		case entity.ErrProviderNotProfessional:
			response.Error(w, http.StatusBadRequest, "Only professional users can create services", nil)
		case entity.ErrNegativePrice:
			response.Error(w, http.StatusBadRequest, "Price must not be negative", nil)
		default:
			response.InternalServerError(w, "Failed to create service")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", svc)
}

// ListServices is the public home listing
func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceUsecase.ListServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

// SearchServices matches ?q= as a case-insensitive substring of
// name or description
func (h *ServiceHandler) SearchServices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	services, err := h.serviceUsecase.SearchServices(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to search services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *ServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	detail, err := h.serviceUsecase.GetService(r.Context(), serviceID)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to get service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", detail)
}

func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
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

	svc, err := h.serviceUsecase.UpdateService(r.Context(), serviceID, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrNotServiceOwner:
			response.Forbidden(w, "Service does not belong to you")
		case entity.ErrNegativePrice:
			response.Error(w, http.StatusBadRequest, "Price must not be negative", nil)
		default:
			response.InternalServerError(w, "Failed to update service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", svc)
}

func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	if err := h.serviceUsecase.DeleteService(r.Context(), serviceID); err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrNotServiceOwner:
			response.Forbidden(w, "Service does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}
