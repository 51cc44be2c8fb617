package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ryank-holgate/ChronoChef/internal/models"
	"github.com/ryank-holgate/ChronoChef/internal/types"
)

// RecipeService handles saved-recipe persistence. Every query carries the
// owner predicate; there is no way to reach another user's rows through it.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// SaveRecipe inserts a generated recipe for userID and returns the stored row
func (s *RecipeService) SaveRecipe(ctx context.Context, userID uuid.UUID, in *types.SavedRecipeInsert) (*models.SavedRecipe, error) {
	rec := &models.SavedRecipe{
		UserID:            userID,
		RecipeName:        in.RecipeName,
		RecipeDescription: in.RecipeDescription,
		CookTime:          in.CookTime,
		Ingredients:       models.JSONBStringArray(in.Ingredients),
		Instructions:      models.JSONBStringArray(in.Instructions),
		Category:          models.NormalizeCategory(in.Category),
		Source:            models.SourceGenerated,
	}

	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// AddUserRecipe inserts a recipe from the free-text form. The source is
// always "user-added" and text blocks are split into ordered line sequences.
func (s *RecipeService) AddUserRecipe(ctx context.Context, userID uuid.UUID, form *types.UserRecipeForm) (*models.SavedRecipe, error) {
	var (
		description  string
		ingredients  []string
		instructions []string
	)

	if strings.TrimSpace(form.RecipeContent) != "" {
		parsed, err := ParseRecipeContent(form.RecipeContent)
		if err != nil {
			return nil, err
		}
		description = parsed.Description
		ingredients = parsed.Ingredients
		instructions = parsed.Instructions
	} else {
		description = strings.TrimSpace(form.Description)
		ingredients = SplitLines(form.IngredientsText)
		instructions = SplitLines(form.InstructionsText)
	}

	cookTime := strings.TrimSpace(form.CookTime)
	if cookTime == "" {
		cookTime = "Not specified"
	}

	rec := &models.SavedRecipe{
		UserID:            userID,
		RecipeName:        strings.TrimSpace(form.RecipeName),
		RecipeDescription: description,
		CookTime:          cookTime,
		Ingredients:       models.JSONBStringArray(ingredients),
		Instructions:      models.JSONBStringArray(instructions),
		Category:          models.NormalizeCategory(form.Category),
		Source:            models.SourceUserAdded,
	}

	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// GetSavedRecipes returns all of userID's rows, oldest first
func (s *RecipeService) GetSavedRecipes(ctx context.Context, userID uuid.UUID) ([]models.SavedRecipe, error) {
	var recipes []models.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetSavedRecipesByCategory filters by exact category match, or returns the
// unfiltered set when category is empty.
func (s *RecipeService) GetSavedRecipesByCategory(ctx context.Context, userID uuid.UUID, category string) ([]models.SavedRecipe, error) {
	if category == "" {
		return s.GetSavedRecipes(ctx, userID)
	}

	var recipes []models.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		Order("created_at ASC, id ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// DeleteSavedRecipe deletes at most one row matching both id and userID.
// A non-matching id is a silent no-op; deletes are idempotent.
func (s *RecipeService) DeleteSavedRecipe(ctx context.Context, id uint, userID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.SavedRecipe{}).Error
}
