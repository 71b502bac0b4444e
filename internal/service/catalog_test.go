package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Jobor-Marho/django-receipe-app-api/internal/models"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/service"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/testhelpers"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/types"
)

func TestListTagsOrderedByNameDescending(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	tagSvc := service.NewTagService(db)
	user := createTestUser(t, db, "test@example.com")

	for _, name := range []string{"Breakfast", "Vegan", "Dessert"} {
		assert.NoError(t, db.Create(&models.Tag{Name: name, UserID: user.ID}).Error)
	}

	tags, err := tagSvc.ListTags(context.Background(), user.ID, false)
	assert.NoError(t, err)
	assert.Len(t, tags, 3)
	assert.Equal(t, "Vegan", tags[0].Name)
	assert.Equal(t, "Dessert", tags[1].Name)
	assert.Equal(t, "Breakfast", tags[2].Name)
}

func TestListTagsScopedToOwner(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	tagSvc := service.NewTagService(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	assert.NoError(t, db.Create(&models.Tag{Name: "Mine", UserID: alice.ID}).Error)
	assert.NoError(t, db.Create(&models.Tag{Name: "Theirs", UserID: bob.ID}).Error)

	tags, err := tagSvc.ListTags(context.Background(), alice.ID, false)
	assert.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.Equal(t, "Mine", tags[0].Name)
}

func TestListTagsAssignedOnly(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	tagSvc := service.NewTagService(db)
	recipeSvc := service.NewRecipeService(db)
	user := createTestUser(t, db, "test@example.com")

	assert.NoError(t, db.Create(&models.Tag{Name: "Unused", UserID: user.ID}).Error)

	input := sampleRecipeInput("Porridge")
	input.Tags = []types.NameInput{{Name: "Breakfast"}}
	_, err := recipeSvc.CreateRecipe(context.Background(), user.ID, input)
	assert.NoError(t, err)

	tags, err := tagSvc.ListTags(context.Background(), user.ID, true)
	assert.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.Equal(t, "Breakfast", tags[0].Name)
}

func TestListTagsAssignedOnlyDeduplicates(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	tagSvc := service.NewTagService(db)
	recipeSvc := service.NewRecipeService(db)
	user := createTestUser(t, db, "test@example.com")

	// Two recipes sharing one tag must not list it twice
	for _, title := range []string{"Porridge", "Pancakes"} {
		input := sampleRecipeInput(title)
		input.Tags = []types.NameInput{{Name: "Breakfast"}}
		_, err := recipeSvc.CreateRecipe(context.Background(), user.ID, input)
		assert.NoError(t, err)
	}

	tags, err := tagSvc.ListTags(context.Background(), user.ID, true)
	assert.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestUpdateTag(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	tagSvc := service.NewTagService(db)
	user := createTestUser(t, db, "test@example.com")

	tag := models.Tag{Name: "Old", UserID: user.ID}
	assert.NoError(t, db.Create(&tag).Error)

	updated, err := tagSvc.UpdateTag(context.Background(), user.ID, tag.ID, "New")
	assert.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
}

func TestUpdateTagToExistingNameConflict(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	tagSvc := service.NewTagService(db)
	user := createTestUser(t, db, "test@example.com")

	assert.NoError(t, db.Create(&models.Tag{Name: "Dinner", UserID: user.ID}).Error)
	tag := models.Tag{Name: "Supper", UserID: user.ID}
	assert.NoError(t, db.Create(&tag).Error)

	_, err := tagSvc.UpdateTag(context.Background(), user.ID, tag.ID, "Dinner")
	assert.ErrorIs(t, err, service.ErrNameTaken)
}

func TestUpdateIngredientToExistingNameConflict(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ingredientSvc := service.NewIngredientService(db)
	user := createTestUser(t, db, "test@example.com")

	assert.NoError(t, db.Create(&models.Ingredient{Name: "Salt", UserID: user.ID}).Error)
	ingredient := models.Ingredient{Name: "Sea salt", UserID: user.ID}
	assert.NoError(t, db.Create(&ingredient).Error)

	_, err := ingredientSvc.UpdateIngredient(context.Background(), user.ID, ingredient.ID, "Salt")
	assert.ErrorIs(t, err, service.ErrNameTaken)
}

func TestUpdateTagOwnedByOtherUserIsNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	tagSvc := service.NewTagService(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	tag := models.Tag{Name: "Private", UserID: alice.ID}
	assert.NoError(t, db.Create(&tag).Error)

	_, err := tagSvc.UpdateTag(context.Background(), bob.ID, tag.ID, "Hijacked")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteTagRemovesAssociations(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	tagSvc := service.NewTagService(db)
	recipeSvc := service.NewRecipeService(db)
	user := createTestUser(t, db, "test@example.com")

	input := sampleRecipeInput("Stew")
	input.Tags = []types.NameInput{{Name: "Dinner"}}
	recipe, err := recipeSvc.CreateRecipe(context.Background(), user.ID, input)
	assert.NoError(t, err)

	assert.NoError(t, tagSvc.DeleteTag(context.Background(), user.ID, recipe.Tags[0].ID))

	// The recipe survives, minus the tag
	got, err := recipeSvc.GetRecipe(context.Background(), user.ID, recipe.ID)
	assert.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestDeleteTagUnknownIDIsNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	tagSvc := service.NewTagService(db)
	user := createTestUser(t, db, "test@example.com")

	err := tagSvc.DeleteTag(context.Background(), user.ID, uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestListIngredientsAssignedOnly(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ingredientSvc := service.NewIngredientService(db)
	recipeSvc := service.NewRecipeService(db)
	user := createTestUser(t, db, "test@example.com")

	assert.NoError(t, db.Create(&models.Ingredient{Name: "onion", UserID: user.ID}).Error)

	input := sampleRecipeInput("Porridge")
	input.Ingredients = []types.NameInput{{Name: "peper"}}
	_, err := recipeSvc.CreateRecipe(context.Background(), user.ID, input)
	assert.NoError(t, err)

	ingredients, err := ingredientSvc.ListIngredients(context.Background(), user.ID, true)
	assert.NoError(t, err)
	assert.Len(t, ingredients, 1)
	assert.Equal(t, "peper", ingredients[0].Name)
}

func TestListIngredientsOrderedByNameDescending(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ingredientSvc := service.NewIngredientService(db)
	user := createTestUser(t, db, "test@example.com")

	for _, name := range []string{"apple", "salt", "kale"} {
		assert.NoError(t, db.Create(&models.Ingredient{Name: name, UserID: user.ID}).Error)
	}

	ingredients, err := ingredientSvc.ListIngredients(context.Background(), user.ID, false)
	assert.NoError(t, err)
	assert.Len(t, ingredients, 3)
	assert.Equal(t, "salt", ingredients[0].Name)
	assert.Equal(t, "kale", ingredients[1].Name)
	assert.Equal(t, "apple", ingredients[2].Name)
}

func TestUpdateIngredient(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ingredientSvc := service.NewIngredientService(db)
	user := createTestUser(t, db, "test@example.com")

	ingredient := models.Ingredient{Name: "suggar", UserID: user.ID}
	assert.NoError(t, db.Create(&ingredient).Error)

	updated, err := ingredientSvc.UpdateIngredient(context.Background(), user.ID, ingredient.ID, "sugar")
	assert.NoError(t, err)
	assert.Equal(t, "sugar", updated.Name)
}

func TestDeleteIngredientOwnedByOtherUserIsNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ingredientSvc := service.NewIngredientService(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	ingredient := models.Ingredient{Name: "truffle", UserID: alice.ID}
	assert.NoError(t, db.Create(&ingredient).Error)

	err := ingredientSvc.DeleteIngredient(context.Background(), bob.ID, ingredient.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
