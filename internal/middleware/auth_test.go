package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mealmuse/backend/internal/middleware"
	"github.com/mealmuse/backend/internal/testhelpers"
	"github.com/mealmuse/backend/internal/types"
)

func setupAuthTestRouter(validator middleware.TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.AuthMiddleware(validator), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing header is 401", func(t *testing.T) {
		router := setupAuthTestRouter(new(testhelpers.MockTokenValidator))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "missing authorization header")
	})

	t.Run("malformed header is 401", func(t *testing.T) {
		router := setupAuthTestRouter(new(testhelpers.MockTokenValidator))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token is 401", func(t *testing.T) {
		validator := new(testhelpers.MockTokenValidator)
		validator.On("ValidateToken", "bad-token").
			Return(nil, errors.New("invalid token")).Once()

		router := setupAuthTestRouter(validator)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token reaches the handler with user context", func(t *testing.T) {
		userID := uuid.New()
		validator := new(testhelpers.MockTokenValidator)
		validator.On("ValidateToken", "good-token").
			Return(&types.TokenClaims{UserID: userID, Email: "test@example.com"}, nil).Once()

		router := setupAuthTestRouter(validator)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})
}
