package testhelpers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mealmuse/backend/internal/models"
	"github.com/mealmuse/backend/internal/types"
)

// MockInvoker implements bedrock.Invoker for tests
type MockInvoker struct {
	mock.Mock
}

func (m *MockInvoker) Invoke(ctx context.Context, modelID string, body []byte) ([]byte, error) {
	args := m.Called(ctx, modelID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockTokenValidator implements middleware.TokenValidator for tests
type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

// MockRecipeService implements service.IRecipeService for handler tests
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) GenerateRecipeIdea(ctx context.Context, userID uuid.UUID, ingredients []string) (*models.SavedRecipe, error) {
	args := m.Called(ctx, userID, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SavedRecipe), args.Error(1)
}

func (m *MockRecipeService) ListRecipes(ctx context.Context, userID uuid.UUID) ([]models.SavedRecipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SavedRecipe), args.Error(1)
}

func (m *MockRecipeService) GetRecipe(ctx context.Context, userID, id uuid.UUID) (*models.SavedRecipe, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SavedRecipe), args.Error(1)
}

func (m *MockRecipeService) DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockRecipeService) SearchRecipes(ctx context.Context, userID uuid.UUID, query string) ([]models.SavedRecipe, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SavedRecipe), args.Error(1)
}

// MockAuthService implements service.IAuthService for handler tests
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(name, email, password string) (string, error) {
	args := m.Called(name, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(email, password string) (string, error) {
	args := m.Called(email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}
