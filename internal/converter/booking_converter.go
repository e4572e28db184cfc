package converter

import (
	"justbookit/internal/delivery/dto"
	"justbookit/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:         booking.ID,
		ServiceID:  booking.ServiceID,
		CustomerID: booking.CustomerID,
		Date:       booking.Date,
		Status:     string(booking.Status),
		CreatedAt:  booking.CreatedAt,
		UpdatedAt:  booking.UpdatedAt,
	}

	if booking.Service.ID != uuid.Nil {
		response.Service = ServiceToResponse(&booking.Service)
	}
	if booking.Customer.ID != uuid.Nil {
		response.CustomerName = booking.Customer.Username
	}
	if booking.Review != nil {
		response.Review = ReviewToResponse(booking.Review)
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = *BookingToResponse(&booking)
	}
	return responses
}
