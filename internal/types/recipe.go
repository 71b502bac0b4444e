package types

import "github.com/shopspring/decimal"

// NameInput is a nested tag or ingredient reference submitted with a recipe.
// Entities are resolved per owner by name, created when missing.
type NameInput struct {
	Name string `json:"name" binding:"required"`
}

// CreateRecipeInput carries the fields for a new recipe. The owner is never
// part of the input; it is always the requesting user. TimeMinutes is a
// pointer so that a present zero is distinguishable from an absent key.
type CreateRecipeInput struct {
	Title       string          `json:"title" binding:"required"`
	TimeMinutes *uint           `json:"time_minutes" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Link        string          `json:"link"`
	Description string          `json:"description"`
	Tags        []NameInput     `json:"tags"`
	Ingredients []NameInput     `json:"ingredients"`
}

// UpdateRecipeInput carries a sparse update. Nil means the key was absent
// from the payload and the field is left untouched. A non-nil Tags or
// Ingredients slice, including an empty one, fully replaces the association.
type UpdateRecipeInput struct {
	Title       *string          `json:"title"`
	TimeMinutes *uint            `json:"time_minutes"`
	Price       *decimal.Decimal `json:"price"`
	Link        *string          `json:"link"`
	Description *string          `json:"description"`
	Tags        *[]NameInput     `json:"tags"`
	Ingredients *[]NameInput     `json:"ingredients"`
}
