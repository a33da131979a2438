package usecase

import (
	"context"

	"recipe_backend/internal/feature/recipes/domain/entity"
)

// RecipeRepository abstracts the persistence layer for recipe aggregates.
// Every method is scoped to an owner: rows belonging to other users behave
// exactly as if they did not exist.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type RecipeRepository interface {
	// Create persists a recipe together with its pre-resolved tag and
	// ingredient associations.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByID retrieves a recipe with its associations preloaded.
	// It returns ErrRecipeNotFound for absent and foreign rows alike.
	FindByID(ctx context.Context, userID, id uint) (*entity.Recipe, error)

	// ListByUser returns the owner's recipes ordered by descending ID.
	ListByUser(ctx context.Context, userID uint) ([]entity.Recipe, error)

	// UpdateFields applies the given column values to an owned recipe.
	// Columns not present in fields are left unchanged.
	UpdateFields(ctx context.Context, userID, id uint, fields map[string]any) error

	// ReplaceTags swaps the recipe's tag associations for the given set.
	// An empty set clears all associations.
	ReplaceTags(ctx context.Context, recipe *entity.Recipe, tags []entity.Tag) error

	// ReplaceIngredients swaps the recipe's ingredient associations.
	ReplaceIngredients(ctx context.Context, recipe *entity.Recipe, ingredients []entity.Ingredient) error

	// Delete removes an owned recipe and its association rows.
	Delete(ctx context.Context, userID, id uint) error

	// Transaction runs fn against a repository bound to one database
	// transaction. If fn returns an error every write made through that
	// repository is rolled back.
	Transaction(ctx context.Context, fn func(RecipeRepository) error) error
}

// TagRepository abstracts the persistence layer for tags.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TagRepository interface {
	// ListByUser returns the owner's tags ordered by descending name.
	ListByUser(ctx context.Context, userID uint) ([]entity.Tag, error)

	// GetOrCreate returns the owner's tag with the given name, inserting it
	// first if no such row exists. Existing rows are never mutated.
	GetOrCreate(ctx context.Context, userID uint, name string) (*entity.Tag, error)

	// Update renames an owned tag. It returns ErrTagNotFound for absent and
	// foreign rows alike.
	Update(ctx context.Context, userID, id uint, name string) (*entity.Tag, error)

	// Delete removes an owned tag.
	Delete(ctx context.Context, userID, id uint) error
}

// IngredientRepository mirrors TagRepository for ingredients.
type IngredientRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]entity.Ingredient, error)
	GetOrCreate(ctx context.Context, userID uint, name string) (*entity.Ingredient, error)
	Update(ctx context.Context, userID, id uint, name string) (*entity.Ingredient, error)
	Delete(ctx context.Context, userID, id uint) error
}
