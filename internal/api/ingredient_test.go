package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jobor-Marho/django-receipe-app-api/internal/models"
)

func TestListIngredientsUnauthenticated(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/ingredients", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
}

func TestListIngredients(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	user, token := createUserAndToken(t, db, "test@example.com")

	assert.NoError(t, db.Create(&models.Ingredient{Name: "Kale", UserID: user.ID}).Error)
	assert.NoError(t, db.Create(&models.Ingredient{Name: "Salt", UserID: user.ID}).Error)

	req := httptest.NewRequest("GET", "/api/v1/ingredients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var response struct {
		Ingredients []models.Ingredient `json:"ingredients"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Ingredients, 2)
	assert.Equal(t, "Salt", response.Ingredients[0].Name)
	assert.Equal(t, "Kale", response.Ingredients[1].Name)
}

func TestListIngredientsEmptyRendersEmptyList(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	_, token := createUserAndToken(t, db, "test@example.com")

	req := httptest.NewRequest("GET", "/api/v1/ingredients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"ingredients":[]`)
}

func TestListIngredientsAssignedOnlyQuery(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	user, token := createUserAndToken(t, db, "test@example.com")

	assert.NoError(t, db.Create(&models.Ingredient{Name: "peper", UserID: user.ID}).Error)
	postRecipe(t, router, token, map[string]interface{}{
		"title": "Coriander eggs on toast", "time_minutes": 10, "price": "5.00",
		"ingredients": []map[string]string{{"name": "Apples"}},
	})

	req := httptest.NewRequest("GET", "/api/v1/ingredients?assigned_only=1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var response struct {
		Ingredients []models.Ingredient `json:"ingredients"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Ingredients, 1)
	assert.Equal(t, "Apples", response.Ingredients[0].Name)
}

func TestUpdateIngredient(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	user, token := createUserAndToken(t, db, "test@example.com")

	ingredient := models.Ingredient{Name: "Cabage", UserID: user.ID}
	assert.NoError(t, db.Create(&ingredient).Error)

	req := httptest.NewRequest("PATCH", "/api/v1/ingredients/"+ingredient.ID.String(), strings.NewReader(`{"name": "Cabbage"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var updated models.Ingredient
	assert.NoError(t, db.First(&updated, "id = ?", ingredient.ID).Error)
	assert.Equal(t, "Cabbage", updated.Name)
}

func TestDeleteIngredient(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	user, token := createUserAndToken(t, db, "test@example.com")

	ingredient := models.Ingredient{Name: "Lettuce", UserID: user.ID}
	assert.NoError(t, db.Create(&ingredient).Error)

	req := httptest.NewRequest("DELETE", "/api/v1/ingredients/"+ingredient.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 204, w.Code)

	var count int64
	db.Model(&models.Ingredient{}).Where("id = ?", ingredient.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteIngredientOwnedByOtherUser(t *testing.T) {
	router, db, _ := setupTestRouter(t)
	alice, _ := createUserAndToken(t, db, "alice@example.com")
	_, bobToken := createUserAndToken(t, db, "bob@example.com")

	ingredient := models.Ingredient{Name: "Saffron", UserID: alice.ID}
	assert.NoError(t, db.Create(&ingredient).Error)

	req := httptest.NewRequest("DELETE", "/api/v1/ingredients/"+ingredient.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+bobToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)

	var count int64
	db.Model(&models.Ingredient{}).Where("id = ?", ingredient.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}
