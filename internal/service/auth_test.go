package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealmuse/backend/internal/service"
	"github.com/mealmuse/backend/internal/testhelpers"
)

func TestAuthService_Register(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authService := service.NewAuthService(db, "test-secret")

	t.Run("registers a new user and returns a token", func(t *testing.T) {
		token, err := authService.Register("Test User", "test@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := authService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", claims.Email)
		assert.NotEmpty(t, claims.UserID)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := authService.Register("Other User", "test@example.com", "password456")
		assert.ErrorIs(t, err, service.ErrUserExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authService := service.NewAuthService(db, "test-secret")

	_, err := authService.Register("Login User", "login@example.com", "password123")
	require.NoError(t, err)

	t.Run("valid credentials return a token", func(t *testing.T) {
		token, err := authService.Login("login@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := authService.Login("login@example.com", "wrongpassword")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email is rejected", func(t *testing.T) {
		_, err := authService.Login("nobody@example.com", "password123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authService := service.NewAuthService(db, "test-secret")

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := authService.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := service.NewAuthService(db, "different-secret")
		token, err := other.Register("Imposter", "imposter@example.com", "password123")
		require.NoError(t, err)

		_, err = authService.ValidateToken(token)
		assert.Error(t, err)
	})
}
