package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	Date time.Time `json:"date" validate:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
}

// Response DTOs

type BookingResponse struct {
	ID           uuid.UUID        `json:"id"`
	ServiceID    uuid.UUID        `json:"service_id"`
	CustomerID   uuid.UUID        `json:"customer_id"`
	Date         time.Time        `json:"date"`
	Status       string           `json:"status"`
	Service      *ServiceResponse `json:"service,omitempty"`
	CustomerName string           `json:"customer_name,omitempty"`
	Review       *ReviewResponse  `json:"review,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// DashboardResponse mirrors the dashboard split: professionals see their own
// services plus the bookings placed against them, customers see the bookings
// they placed.
type DashboardResponse struct {
	Services []ServiceResponse `json:"services,omitempty"`
	Bookings []BookingResponse `json:"bookings"`
}
