package usecase

import (
	"context"
	"fmt"
	"strings"

	"recipe_backend/internal/feature/recipes/domain/entity"
)

// IngredientUsecase mirrors TagUsecase for the /ingredients endpoints.
type IngredientUsecase struct {
	ingredients IngredientRepository
}

// NewIngredientUsecase creates a new IngredientUsecase.
func NewIngredientUsecase(ingredients IngredientRepository) *IngredientUsecase {
	return &IngredientUsecase{ingredients: ingredients}
}

// List returns the caller's ingredients ordered by descending name.
func (u *IngredientUsecase) List(ctx context.Context, userID uint) ([]entity.Ingredient, error) {
	return u.ingredients.ListByUser(ctx, userID)
}

// Update renames one of the caller's ingredients.
func (u *IngredientUsecase) Update(ctx context.Context, userID, id uint, name string) (*entity.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: ingredient name is required", ErrInvalidInput)
	}
	return u.ingredients.Update(ctx, userID, id, name)
}

// Delete removes one of the caller's ingredients.
func (u *IngredientUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.ingredients.Delete(ctx, userID, id)
}
