package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jobor-Marho/django-receipe-app-api/internal/models"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/types"
)

// RecipeService handles ownership-scoped recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipes returns the recipes owned by the given user, newest first.
// Optional tag/ingredient ID filters restrict the result to recipes
// associated with any of the given IDs.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID, tagIDs, ingredientIDs []uuid.UUID) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("recipes.user_id = ?", userID)

	if len(tagIDs) > 0 {
		query = query.Where("recipes.id IN (?)",
			s.db.Table("recipe_tags").Select("recipe_id").Where("tag_id IN ?", tagIDs))
	}
	if len(ingredientIDs) > 0 {
		query = query.Where("recipes.id IN (?)",
			s.db.Table("recipe_ingredients").Select("recipe_id").Where("ingredient_id IN ?", ingredientIDs))
	}

	var recipes []models.Recipe
	if err := query.Order("recipes.created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves one of the user's recipes by ID. A recipe owned by a
// different user is reported as not found, never as forbidden.
func (s *RecipeService) GetRecipe(ctx context.Context, userID, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		First(&recipe, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe creates a recipe owned by the given user. Nested tags and
// ingredients are resolved under the same owner regardless of input.
func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, input types.CreateRecipeInput) (*models.Recipe, error) {
	recipe := models.Recipe{
		Title:       input.Title,
		TimeMinutes: *input.TimeMinutes,
		Price:       input.Price,
		Link:        input.Link,
		Description: input.Description,
		UserID:      userID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}

		tags, err := reconcileTags(tx, userID, input.Tags)
		if err != nil {
			return err
		}
		if err := tx.Model(&recipe).Association("Tags").Replace(tags); err != nil {
			return err
		}

		ingredients, err := reconcileIngredients(tx, userID, input.Ingredients)
		if err != nil {
			return err
		}
		return tx.Model(&recipe).Association("Ingredients").Replace(ingredients)
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, userID, recipe.ID)
}

// UpdateRecipe applies a sparse update to one of the user's recipes. A tags
// or ingredients key present in the payload, even as an empty list, clears
// the existing associations and replaces them.
func (s *RecipeService) UpdateRecipe(ctx context.Context, userID, id uuid.UUID, input types.UpdateRecipeInput) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		recipe.Title = *input.Title
	}
	if input.TimeMinutes != nil {
		recipe.TimeMinutes = *input.TimeMinutes
	}
	if input.Price != nil {
		recipe.Price = *input.Price
	}
	if input.Link != nil {
		recipe.Link = *input.Link
	}
	if input.Description != nil {
		recipe.Description = *input.Description
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients").Save(recipe).Error; err != nil {
			return err
		}

		if input.Tags != nil {
			tags, err := reconcileTags(tx, userID, *input.Tags)
			if err != nil {
				return err
			}
			if err := tx.Model(recipe).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}

		if input.Ingredients != nil {
			ingredients, err := reconcileIngredients(tx, userID, *input.Ingredients)
			if err != nil {
				return err
			}
			if err := tx.Model(recipe).Association("Ingredients").Replace(ingredients); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, userID, id)
}

// DeleteRecipe removes one of the user's recipes along with its tag and
// ingredient associations. The tag and ingredient records themselves are
// shared and stay untouched.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error {
	recipe, err := s.GetRecipe(ctx, userID, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Ingredients").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
}

// SetRecipeImage stores the image URL on one of the user's recipes,
// replacing any prior image reference.
func (s *RecipeService) SetRecipeImage(ctx context.Context, userID, id uuid.UUID, imageURL string) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	recipe.ImageURL = imageURL
	if err := s.db.WithContext(ctx).Model(recipe).Update("image_url", imageURL).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}
