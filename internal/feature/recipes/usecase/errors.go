// Package usecase implements the business logic for the recipes feature.
package usecase

import "errors"

var (
	// ErrInvalidInput flags validation failures. Callers wrap it with a
	// field-specific message and handlers map it to 400.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRecipeNotFound is returned when a recipe does not exist or belongs
	// to another user. The two cases are deliberately indistinguishable.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrTagNotFound is the tag counterpart of ErrRecipeNotFound.
	ErrTagNotFound = errors.New("tag not found")

	// ErrIngredientNotFound is the ingredient counterpart of ErrRecipeNotFound.
	ErrIngredientNotFound = errors.New("ingredient not found")
)
