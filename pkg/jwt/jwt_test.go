package jwt

import (
	"testing"
	"time"

	"justbookit/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	s := testService()
	subject := TokenSubject{
		UserID:         uuid.New(),
		Username:       "alice",
		IsProfessional: true,
		IsStaff:        false,
	}

	token, tokenID, err := s.GenerateAccessToken(subject)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, subject.UserID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsProfessional)
	assert.False(t, claims.IsStaff)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenCarriesType(t *testing.T) {
	s := testService()

	token, _, err := s.GenerateRefreshToken(TokenSubject{UserID: uuid.New(), Username: "bob"})
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(TokenSubject{UserID: uuid.New()})
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Minute})
	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	s := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: -time.Minute})

	token, _, err := s.GenerateAccessToken(TokenSubject{UserID: uuid.New()})
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := testService().ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
