package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=100"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
}

type UpdateServiceRequest struct {
	Name        string           `json:"name" validate:"omitempty,min=2,max=100"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// Response DTOs

type ServiceResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ProviderID    uuid.UUID       `json:"provider_id"`
	ProviderName  string          `json:"provider_name,omitempty"`
	AverageRating float64         `json:"average_rating"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

type ServiceDetailResponse struct {
	Service ServiceResponse  `json:"service"`
	Reviews []ReviewResponse `json:"reviews"`
}
