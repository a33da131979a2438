package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/usecase"
)

// ingredientPostgres is the Postgres implementation of the IngredientRepository interface.
type ingredientPostgres struct {
	db *gorm.DB
}

// Compile-time check that ingredientPostgres implements IngredientRepository.
var _ usecase.IngredientRepository = (*ingredientPostgres)(nil)

// NewIngredientPostgres creates a new ingredientPostgres backed by the given gorm.DB.
func NewIngredientPostgres(db *gorm.DB) *ingredientPostgres {
	return &ingredientPostgres{db: db}
}

// ListByUser returns the owner's ingredients ordered by descending name.
func (r *ingredientPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.Ingredient, error) {
	var ingredients []entity.Ingredient
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name DESC").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetOrCreate returns the owner's ingredient with the given name, inserting
// it first when absent. Conflicts with a concurrent insert resolve to the
// winning row, as in the tag repository.
func (r *ingredientPostgres) GetOrCreate(ctx context.Context, userID uint, name string) (*entity.Ingredient, error) {
	var ingredient entity.Ingredient
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&ingredient).Error
	if err == nil {
		return &ingredient, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ingredient = entity.Ingredient{UserID: userID, Name: name}
	createErr := r.db.WithContext(ctx).Create(&ingredient).Error
	if createErr == nil {
		return &ingredient, nil
	}

	var existing entity.Ingredient
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&existing).Error; err == nil {
		return &existing, nil
	}
	return nil, createErr
}

// Update renames an owned ingredient.
func (r *ingredientPostgres) Update(ctx context.Context, userID, id uint, name string) (*entity.Ingredient, error) {
	var ingredient entity.Ingredient
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrIngredientNotFound
		}
		return nil, err
	}
	ingredient.Name = name
	if err := r.db.WithContext(ctx).Save(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Delete removes an owned ingredient.
func (r *ingredientPostgres) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Ingredient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrIngredientNotFound
	}
	return nil
}
