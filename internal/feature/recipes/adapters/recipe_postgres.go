package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/usecase"
)

// recipePostgres is the Postgres implementation of the RecipeRepository interface.
type recipePostgres struct {
	db *gorm.DB
}

// Compile-time check that recipePostgres implements RecipeRepository.
var _ usecase.RecipeRepository = (*recipePostgres)(nil)

// NewRecipePostgres creates a new recipePostgres backed by the given gorm.DB.
func NewRecipePostgres(db *gorm.DB) *recipePostgres {
	return &recipePostgres{db: db}
}

// Create inserts the recipe row together with join rows for its resolved
// tags and ingredients. GORM runs the insert and the association writes in
// one transaction, so the aggregate appears atomically.
func (r *recipePostgres) Create(ctx context.Context, recipe *entity.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// FindByID retrieves an owned recipe with tags and ingredients preloaded.
// A row owned by another user is reported as not found.
func (r *recipePostgres) FindByID(ctx context.Context, userID, id uint) (*entity.Recipe, error) {
	var recipe entity.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// ListByUser returns the owner's recipes ordered by descending ID with
// associations preloaded.
func (r *recipePostgres) ListByUser(ctx context.Context, userID uint) ([]entity.Recipe, error) {
	var recipes []entity.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateFields applies the given column values to an owned recipe.
func (r *recipePostgres) UpdateFields(ctx context.Context, userID, id uint, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Recipe{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrRecipeNotFound
	}
	return nil
}

// ReplaceTags swaps the recipe's tag associations for the given set.
func (r *recipePostgres) ReplaceTags(ctx context.Context, recipe *entity.Recipe, tags []entity.Tag) error {
	assoc := r.db.WithContext(ctx).Model(recipe).Association("Tags")
	if len(tags) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(&tags)
}

// ReplaceIngredients swaps the recipe's ingredient associations.
func (r *recipePostgres) ReplaceIngredients(ctx context.Context, recipe *entity.Recipe, ingredients []entity.Ingredient) error {
	assoc := r.db.WithContext(ctx).Model(recipe).Association("Ingredients")
	if len(ingredients) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(&ingredients)
}

// Transaction runs fn against a repository bound to a single database
// transaction, rolling back on error.
func (r *recipePostgres) Transaction(ctx context.Context, fn func(usecase.RecipeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&recipePostgres{db: tx})
	})
}

// Delete removes an owned recipe and its association rows. Foreign and
// absent rows both yield usecase.ErrRecipeNotFound, leaving the foreign row
// untouched.
func (r *recipePostgres) Delete(ctx context.Context, userID, id uint) error {
	var recipe entity.Recipe
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.ErrRecipeNotFound
		}
		return err
	}
	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&recipe).Error
}
