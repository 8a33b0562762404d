package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealmuse/backend/internal/service"
)

// shareExpiration is how long a presigned share link stays valid.
const shareExpiration = 24 * time.Hour

// RecipeHandler handles recipe generation and history requests
type RecipeHandler struct {
	recipeService service.IRecipeService
	archive       *service.ArchiveService
}

// NewRecipeHandler creates a new RecipeHandler instance. The archive may be
// nil when sharing is not configured.
func NewRecipeHandler(recipeService service.IRecipeService, archive *service.ArchiveService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		archive:       archive,
	}
}

// Generate handles a recipe generation request. All backend failures collapse
// into the response's error field; nothing on this path panics or retries.
func (h *RecipeHandler) Generate(c *gin.Context) {
	var req GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, GenerateRecipeResponse{Error: "invalid request body"})
		return
	}
	if req.Ingredients == nil {
		req.Ingredients = []string{}
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.GenerateRecipeIdea(c.Request.Context(), userID, req.Ingredients)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, service.ErrGenerationInFlight) {
			status = http.StatusConflict
		}
		log.Printf("[RecipeHandler] generation failed for user %s: %v", userID, err)
		c.JSON(status, GenerateRecipeResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, GenerateRecipeResponse{
		RecipeID: recipe.ID.String(),
		Body:     recipe.Body,
	})
}

// List returns the caller's saved recipes, newest first
func (h *RecipeHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// Get returns one of the caller's saved recipes
func (h *RecipeHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// Delete removes one of the caller's saved recipes
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete recipe"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Search searches the caller's history by ingredient or body text
func (h *RecipeHandler) Search(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipes, err := h.recipeService.SearchRecipes(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// Share returns a presigned link to the archived copy of a recipe
func (h *RecipeHandler) Share(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipe"})
		return
	}

	if h.archive == nil || !h.archive.Enabled() || recipe.ArchiveKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no archived copy available for this recipe"})
		return
	}

	url, err := h.archive.ShareURL(c.Request.Context(), recipe.ArchiveKey, shareExpiration)
	if err != nil {
		log.Printf("[RecipeHandler] failed to presign share link for %s: %v", recipe.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create share link"})
		return
	}

	c.JSON(http.StatusOK, ShareResponse{
		URL:       url,
		ExpiresIn: int(shareExpiration.Seconds()),
	})
}

// currentUserID pulls the authenticated user from the request context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}

	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}

	return userID, true
}
