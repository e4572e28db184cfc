package converter

import (
	"justbookit/internal/delivery/dto"
	"justbookit/internal/domain/entity"
)

// ReviewToResponse converts a Review entity to ReviewResponse DTO
func ReviewToResponse(review *entity.Review) *dto.ReviewResponse {
	if review == nil {
		return nil
	}

	return &dto.ReviewResponse{
		ID:        review.ID,
		BookingID: review.BookingID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

// ReviewsToResponses converts a slice of Review entities to slice of ReviewResponse DTOs
func ReviewsToResponses(reviews []entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = *ReviewToResponse(&review)
	}
	return responses
}
