package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jobor-Marho/django-receipe-app-api/internal/models"
)

// TagService handles the user's tag collection
type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// ListTags returns the user's tags ordered by name descending. With
// assignedOnly set, only tags attached to at least one of the user's
// recipes are returned.
func (s *TagService) ListTags(ctx context.Context, userID uuid.UUID, assignedOnly bool) ([]models.Tag, error) {
	query := s.db.WithContext(ctx).Model(&models.Tag{}).Where("tags.user_id = ?", userID)

	if assignedOnly {
		query = query.Where("tags.id IN (?)",
			s.db.Table("recipe_tags").
				Select("recipe_tags.tag_id").
				Joins("JOIN recipes ON recipes.id = recipe_tags.recipe_id").
				Where("recipes.user_id = ?", userID))
	}

	// non-nil so an empty collection serializes as [] rather than null
	tags := make([]models.Tag, 0)
	if err := query.Order("tags.name DESC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// UpdateTag renames one of the user's tags
func (s *TagService) UpdateTag(ctx context.Context, userID, id uuid.UUID, name string) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).First(&tag, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	tag.Name = name
	if err := s.db.WithContext(ctx).Save(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes one of the user's tags and its recipe associations
func (s *TagService) DeleteTag(ctx context.Context, userID, id uuid.UUID) error {
	var tag models.Tag
	if err := s.db.WithContext(ctx).First(&tag, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM recipe_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, "id = ?", id).Error
	})
}

// IngredientService handles the user's ingredient collection
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// ListIngredients returns the user's ingredients ordered by name descending,
// optionally restricted to those attached to at least one of the user's
// recipes.
func (s *IngredientService) ListIngredients(ctx context.Context, userID uuid.UUID, assignedOnly bool) ([]models.Ingredient, error) {
	query := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("ingredients.user_id = ?", userID)

	if assignedOnly {
		query = query.Where("ingredients.id IN (?)",
			s.db.Table("recipe_ingredients").
				Select("recipe_ingredients.ingredient_id").
				Joins("JOIN recipes ON recipes.id = recipe_ingredients.recipe_id").
				Where("recipes.user_id = ?", userID))
	}

	ingredients := make([]models.Ingredient, 0)
	if err := query.Order("ingredients.name DESC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// UpdateIngredient renames one of the user's ingredients
func (s *IngredientService) UpdateIngredient(ctx context.Context, userID, id uuid.UUID, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ingredient.Name = name
	if err := s.db.WithContext(ctx).Save(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return &ingredient, nil
}

// DeleteIngredient removes one of the user's ingredients and its recipe
// associations
func (s *IngredientService) DeleteIngredient(ctx context.Context, userID, id uuid.UUID) error {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM recipe_ingredients WHERE ingredient_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Ingredient{}, "id = ?", id).Error
	})
}
