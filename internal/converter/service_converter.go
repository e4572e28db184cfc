package converter

import (
	"justbookit/internal/delivery/dto"
	"justbookit/internal/domain/entity"

	"github.com/google/uuid"
)

// ServiceToResponse converts a Service entity to ServiceResponse DTO
func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}

	response := &dto.ServiceResponse{
		ID:            service.ID,
		Name:          service.Name,
		Description:   service.Description,
		Price:         service.Price,
		ProviderID:    service.ProviderID,
		AverageRating: service.AverageRating,
		CreatedAt:     service.CreatedAt,
		UpdatedAt:     service.UpdatedAt,
	}

	if service.Provider.ID != uuid.Nil {
		response.ProviderName = service.Provider.Username
	}

	return response
}

// ServicesToResponses converts a slice of Service entities to slice of ServiceResponse DTOs
func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i, service := range services {
		responses[i] = *ServiceToResponse(&service)
	}
	return responses
}
