package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mealmuse/backend/internal/models"
	"github.com/mealmuse/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(name, email, password string) (string, error)
	Login(email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for recipe generation and history
type IRecipeService interface {
	GenerateRecipeIdea(ctx context.Context, userID uuid.UUID, ingredients []string) (*models.SavedRecipe, error)
	ListRecipes(ctx context.Context, userID uuid.UUID) ([]models.SavedRecipe, error)
	GetRecipe(ctx context.Context, userID, id uuid.UUID) (*models.SavedRecipe, error)
	DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error
	SearchRecipes(ctx context.Context, userID uuid.UUID, query string) ([]models.SavedRecipe, error)
}

var (
	_ IAuthService   = (*AuthService)(nil)
	_ IRecipeService = (*RecipeService)(nil)
)
