package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/garage-manager/internal/models"
)

func newTestService() *Service {
	return NewService("test-secret", time.Hour, bcrypt.MinCost)
}

func TestService_HashPassword(t *testing.T) {
	service := newTestService()

	hash, err := service.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, service.CheckPassword("s3cret-pass", hash))
	assert.False(t, service.CheckPassword("wrong", hash))
}

func TestService_GenerateAndValidateToken(t *testing.T) {
	service := newTestService()
	garageID := "7b0e2c1a-0000-4000-8000-000000000001"
	user := &models.User{ID: "u-1", GarageID: &garageID, Role: models.RoleGarageAdmin}

	token, err := service.GenerateToken(user)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, garageID, claims.GarageID)
	assert.Equal(t, models.RoleGarageAdmin, claims.Role)

	_, err = service.ValidateToken("Bearer " + token)
	assert.NoError(t, err)
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	service := newTestService()
	user := &models.User{ID: "u-1", Role: models.RoleMechanicStaff}

	t.Run("malformed", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService("other-secret", time.Hour, bcrypt.MinCost)
		token, _ := other.GenerateToken(user)
		_, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewService("test-secret", -time.Minute, bcrypt.MinCost)
		token, _ := expired.GenerateToken(user)
		_, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u-1"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	for _, header := range []string{"", "abc.def", "Bearer ", "Basic abc"} {
		_, err := ExtractTokenFromHeader(header)
		assert.ErrorIs(t, err, ErrInvalidToken, header)
	}
}
