package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jobor-Marho/django-receipe-app-api/internal/models"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/types"
)

// reconcileTags resolves each submitted name to an existing or newly created
// tag under the given owner. Lookup is exact, case-sensitive. Duplicate names
// within one call resolve to the same record. Runs inside the caller's
// transaction so a failure partway through creates nothing.
func reconcileTags(tx *gorm.DB, userID uuid.UUID, inputs []types.NameInput) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))

	for _, in := range inputs {
		if _, ok := seen[in.Name]; ok {
			continue
		}
		seen[in.Name] = struct{}{}

		var tag models.Tag
		err := tx.Where("user_id = ? AND name = ?", userID, in.Name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: in.Name, UserID: userID}
			err = tx.Create(&tag).Error
		}
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

// reconcileIngredients is the ingredient counterpart of reconcileTags.
func reconcileIngredients(tx *gorm.DB, userID uuid.UUID, inputs []types.NameInput) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))

	for _, in := range inputs {
		if _, ok := seen[in.Name]; ok {
			continue
		}
		seen[in.Name] = struct{}{}

		var ingredient models.Ingredient
		err := tx.Where("user_id = ? AND name = ?", userID, in.Name).First(&ingredient).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ingredient = models.Ingredient{Name: in.Name, UserID: userID}
			err = tx.Create(&ingredient).Error
		}
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}

	return ingredients, nil
}
