package api

import (
	"github.com/shopspring/decimal"

	"github.com/Jobor-Marho/django-receipe-app-api/internal/models"
)

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
	Name     string `json:"name"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}
}

type TokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UpdateMeRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password" binding:"omitempty,min=5"`
}

type RenameRequest struct {
	Name string `json:"name" binding:"required"`
}

// RecipeSummary is the listing projection: no description or image.
type RecipeSummary struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	TimeMinutes uint                `json:"time_minutes"`
	Price       decimal.Decimal     `json:"price"`
	Link        string              `json:"link"`
	Tags        []models.Tag        `json:"tags"`
	Ingredients []models.Ingredient `json:"ingredients"`
}

func newRecipeSummary(recipe *models.Recipe) RecipeSummary {
	tags := recipe.Tags
	if tags == nil {
		tags = []models.Tag{}
	}
	ingredients := recipe.Ingredients
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}
	return RecipeSummary{
		ID:          recipe.ID.String(),
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}
}
