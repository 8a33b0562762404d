package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mealmuse/backend/internal/bedrock"
	"github.com/mealmuse/backend/internal/models"
)

// ErrGenerationInFlight is returned when a user already has a generation
// running. A second concurrent submission is rejected rather than queued so a
// double-submitted form cannot pay for two model invocations.
var ErrGenerationInFlight = errors.New("a recipe generation is already in progress")

// RecipeService turns ingredient lists into recipe ideas via the model
// endpoint and keeps the results as the user's history.
type RecipeService struct {
	db      *gorm.DB
	locker  GenerationLocker
	invoker bedrock.Invoker
	archive *ArchiveService
	modelID string
}

// NewRecipeService creates a new RecipeService instance. The locker and
// archive may be nil when no Redis or bucket is configured.
func NewRecipeService(db *gorm.DB, locker GenerationLocker, invoker bedrock.Invoker, archive *ArchiveService, modelID string) *RecipeService {
	return &RecipeService{
		db:      db,
		locker:  locker,
		invoker: invoker,
		archive: archive,
		modelID: modelID,
	}
}

// GenerateRecipeIdea performs exactly one model invocation for the given
// ingredients, persists the result and returns it. No retries: transport and
// model failures surface to the caller as errors.
func (s *RecipeService) GenerateRecipeIdea(ctx context.Context, userID uuid.UUID, ingredients []string) (*models.SavedRecipe, error) {
	release, err := s.acquireInflight(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	body, err := bedrock.NewRecipeRequest(ingredients).Body()
	if err != nil {
		return nil, err
	}

	raw, err := s.invoker.Invoke(ctx, s.modelID, body)
	if err != nil {
		return nil, err
	}

	text, err := bedrock.ParseResponse(raw)
	if err != nil {
		return nil, err
	}

	recipe := &models.SavedRecipe{
		ID:          uuid.New(),
		UserID:      userID,
		Ingredients: models.JSONBStringArray(ingredients),
		Body:        text,
		ModelID:     s.modelID,
		Embedding:   GenerateEmbedding(strings.Join(ingredients, " ") + " " + text),
	}

	if s.archive != nil && s.archive.Enabled() {
		key, err := s.archive.Put(ctx, userID, recipe.ID, text)
		if err != nil {
			// Archiving is best effort; the generation already succeeded.
			log.Printf("[RecipeService] failed to archive recipe %s: %v", recipe.ID, err)
		} else {
			recipe.ArchiveKey = key
		}
	}

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}

	return recipe, nil
}

// acquireInflight takes the per-user generation lock. The returned release
// function is always safe to call.
func (s *RecipeService) acquireInflight(ctx context.Context, userID uuid.UUID) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}

	release, acquired, err := s.locker.Acquire(ctx, userID)
	if err != nil {
		// A broken guard should not block generation entirely.
		log.Printf("[RecipeService] in-flight guard unavailable: %v", err)
		return func() {}, nil
	}
	if !acquired {
		return nil, ErrGenerationInFlight
	}
	return release, nil
}

// ListRecipes returns the user's saved recipes, newest first.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID) ([]models.SavedRecipe, error) {
	var recipes []models.SavedRecipe
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves one of the user's saved recipes by ID.
func (s *RecipeService) GetRecipe(ctx context.Context, userID, id uuid.UUID) (*models.SavedRecipe, error) {
	var recipe models.SavedRecipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe deletes one of the user's saved recipes.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error {
	var recipe models.SavedRecipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&recipe).Error
}

// SearchRecipes searches the user's history by ingredient or body text. On
// postgres the results are ordered by embedding distance to the query.
func (s *RecipeService) SearchRecipes(ctx context.Context, userID uuid.UUID, query string) ([]models.SavedRecipe, error) {
	var recipes []models.SavedRecipe

	dbQuery := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(query)
			dbQuery = dbQuery.
				Where("LOWER(body) LIKE ? OR LOWER(ingredients::text) LIKE ?", like, like).
				Clauses(clause.OrderBy{Expression: clause.Expr{
					SQL:                "embedding <-> ?",
					Vars:               []interface{}{vec},
					WithoutParentheses: true,
				}})
		} else {
			// Fallback to keyword search for non-PostgreSQL databases
			dbQuery = dbQuery.Where("LOWER(body) LIKE ? OR LOWER(ingredients) LIKE ?", like, like)
		}
	}

	if err := dbQuery.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
