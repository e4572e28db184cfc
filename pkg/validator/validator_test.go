package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `validate:"required,min=3,max=150"`
	Email    string `validate:"required,email"`
	Rating   int    `validate:"gte=1,lte=5"`
	Status   string `validate:"required,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
}

func TestValidate(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Rating:   4,
		Status:   "PENDING",
	})
	assert.NoError(t, err)

	err = cv.Validate(&sampleRequest{
		Username: "al",
		Email:    "not-an-email",
		Rating:   9,
		Status:   "APPROVED",
	})
	assert.Error(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Username: "al",
		Email:    "not-an-email",
		Rating:   9,
		Status:   "APPROVED",
	})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Username must be at least 3 characters", formatted["Username"])
	assert.Equal(t, "Email must be a valid email address", formatted["Email"])
	assert.Equal(t, "Rating must be less than or equal to 5", formatted["Rating"])
	assert.Equal(t, "Status must be one of PENDING CONFIRMED COMPLETED CANCELLED", formatted["Status"])
}
