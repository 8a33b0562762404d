package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mealmuse/backend/internal/api"
	"github.com/mealmuse/backend/internal/models"
	"github.com/mealmuse/backend/internal/service"
	"github.com/mealmuse/backend/internal/testhelpers"
)

func setupRecipeRouter(recipeService service.IRecipeService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := api.NewRecipeHandler(recipeService, nil)

	authed := router.Group("/api/v1/recipes")
	authed.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	authed.POST("/generate", handler.Generate)
	authed.GET("", handler.List)
	authed.GET("/:id", handler.Get)
	authed.DELETE("/:id", handler.Delete)
	authed.GET("/search", handler.Search)

	return router
}

func TestRecipeHandler_Generate(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the generated body", func(t *testing.T) {
		svc := new(testhelpers.MockRecipeService)
		router := setupRecipeRouter(svc, userID)

		recipe := &models.SavedRecipe{
			ID:     uuid.New(),
			UserID: userID,
			Body:   "Omelette recipe...",
		}
		svc.On("GenerateRecipeIdea", mock.Anything, userID, []string{"eggs", "flour"}).
			Return(recipe, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/generate",
			bytes.NewBufferString(`{"ingredients":["eggs","flour"]}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp api.GenerateRecipeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Omelette recipe...", resp.Body)
		assert.Equal(t, recipe.ID.String(), resp.RecipeID)
		assert.Empty(t, resp.Error)

		svc.AssertExpectations(t)
	})

	t.Run("missing ingredients field defaults to an empty list", func(t *testing.T) {
		svc := new(testhelpers.MockRecipeService)
		router := setupRecipeRouter(svc, userID)

		svc.On("GenerateRecipeIdea", mock.Anything, userID, []string{}).
			Return(&models.SavedRecipe{ID: uuid.New(), Body: "Chef's choice"}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/generate",
			bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("generation failure populates the error field", func(t *testing.T) {
		svc := new(testhelpers.MockRecipeService)
		router := setupRecipeRouter(svc, userID)

		svc.On("GenerateRecipeIdea", mock.Anything, userID, []string{"eggs"}).
			Return(nil, assert.AnError).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/generate",
			bytes.NewBufferString(`{"ingredients":["eggs"]}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)

		var resp api.GenerateRecipeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Body)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("concurrent submission is rejected with 409", func(t *testing.T) {
		svc := new(testhelpers.MockRecipeService)
		router := setupRecipeRouter(svc, userID)

		svc.On("GenerateRecipeIdea", mock.Anything, userID, []string{"eggs"}).
			Return(nil, service.ErrGenerationInFlight).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/generate",
			bytes.NewBufferString(`{"ingredients":["eggs"]}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unauthenticated context is rejected", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		handler := api.NewRecipeHandler(new(testhelpers.MockRecipeService), nil)
		router.POST("/generate", handler.Generate)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate",
			bytes.NewBufferString(`{"ingredients":["eggs"]}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRecipeHandler_History(t *testing.T) {
	userID := uuid.New()

	t.Run("list returns recipes", func(t *testing.T) {
		svc := new(testhelpers.MockRecipeService)
		router := setupRecipeRouter(svc, userID)

		svc.On("ListRecipes", mock.Anything, userID).
			Return([]models.SavedRecipe{{ID: uuid.New(), Body: "Frittata"}}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Frittata")
	})

	t.Run("get unknown recipe is 404", func(t *testing.T) {
		svc := new(testhelpers.MockRecipeService)
		router := setupRecipeRouter(svc, userID)

		id := uuid.New()
		svc.On("GetRecipe", mock.Anything, userID, id).
			Return(nil, gorm.ErrRecordNotFound).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/"+id.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id is 400", func(t *testing.T) {
		svc := new(testhelpers.MockRecipeService)
		router := setupRecipeRouter(svc, userID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/not-a-uuid", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete returns 204", func(t *testing.T) {
		svc := new(testhelpers.MockRecipeService)
		router := setupRecipeRouter(svc, userID)

		id := uuid.New()
		svc.On("DeleteRecipe", mock.Anything, userID, id).Return(nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/recipes/"+id.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("search passes the query through", func(t *testing.T) {
		svc := new(testhelpers.MockRecipeService)
		router := setupRecipeRouter(svc, userID)

		svc.On("SearchRecipes", mock.Anything, userID, "eggs").
			Return([]models.SavedRecipe{}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/search?q=eggs", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}
