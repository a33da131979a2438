package usecase

import (
	"context"
	"fmt"
	"strings"

	"recipe_backend/internal/feature/recipes/domain/entity"
)

// maxPrice is the exclusive upper bound implied by the decimal(5,2) column.
const maxPrice = 1000

// TagInput is a tag descriptor supplied by the caller. Descriptors carry no
// IDs: they resolve to the caller's existing tag of the same name or create
// a new one.
type TagInput struct {
	Name string
}

// IngredientInput is the ingredient counterpart of TagInput.
type IngredientInput struct {
	Name string
}

// CreateRecipeInput carries the fields for a new recipe. Tags and
// Ingredients default to empty sets.
type CreateRecipeInput struct {
	Title       string
	Description string
	TimeMinutes int
	Price       float64
	Link        string
	Tags        []TagInput
	Ingredients []IngredientInput
}

// UpdateRecipeInput carries a partial update. Nil pointers mean "leave
// unchanged". For Tags and Ingredients a nil pointer means the field was
// omitted, while a pointer to an empty slice explicitly clears the set.
// There is no owner field here: ownership is immutable and requests that
// try to set it are dropped before this type is built.
type UpdateRecipeInput struct {
	Title       *string
	Description *string
	TimeMinutes *int
	Price       *float64
	Link        *string
	Tags        *[]TagInput
	Ingredients *[]IngredientInput
}

// RecipeUsecase orchestrates recipe mutations, resolving tag and ingredient
// descriptors against the caller's own rows.
type RecipeUsecase struct {
	recipes     RecipeRepository
	tags        TagRepository
	ingredients IngredientRepository
}

// NewRecipeUsecase creates a new RecipeUsecase.
func NewRecipeUsecase(recipes RecipeRepository, tags TagRepository, ingredients IngredientRepository) *RecipeUsecase {
	return &RecipeUsecase{
		recipes:     recipes,
		tags:        tags,
		ingredients: ingredients,
	}
}

// List returns the caller's recipes, newest first.
func (u *RecipeUsecase) List(ctx context.Context, userID uint) ([]entity.Recipe, error) {
	return u.recipes.ListByUser(ctx, userID)
}

// Get returns one of the caller's recipes with tags and ingredients loaded.
func (u *RecipeUsecase) Get(ctx context.Context, userID, id uint) (*entity.Recipe, error) {
	return u.recipes.FindByID(ctx, userID, id)
}

// Create validates the input, resolves tag and ingredient descriptors
// against the caller's rows, and persists the new recipe with its
// associations attached.
func (u *RecipeUsecase) Create(ctx context.Context, userID uint, in CreateRecipeInput) (*entity.Recipe, error) {
	if err := validateScalars(in.Title, in.TimeMinutes, in.Price); err != nil {
		return nil, err
	}

	tags, err := u.resolveTags(ctx, userID, in.Tags)
	if err != nil {
		return nil, err
	}
	ingredients, err := u.resolveIngredients(ctx, userID, in.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &entity.Recipe{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		TimeMinutes: in.TimeMinutes,
		Price:       in.Price,
		Link:        in.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}
	if err := u.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update applies a partial update to one of the caller's recipes.
// Omitted tag/ingredient fields leave the associations untouched; an
// explicitly empty set clears them. Scalar fields not present in the input
// keep their current values. All validation runs before any write, and the
// writes share one transaction, so a failed update leaves the recipe exactly
// as it was.
func (u *RecipeUsecase) Update(ctx context.Context, userID, id uint, in UpdateRecipeInput) (*entity.Recipe, error) {
	fields, err := scalarFields(in)
	if err != nil {
		return nil, err
	}

	recipe, err := u.recipes.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	// Resolving descriptors may insert tag/ingredient rows, but those rows
	// are owned by the user, not by this recipe, so they are not part of the
	// update's atomicity.
	var tags []entity.Tag
	if in.Tags != nil {
		if tags, err = u.resolveTags(ctx, userID, *in.Tags); err != nil {
			return nil, err
		}
	}
	var ingredients []entity.Ingredient
	if in.Ingredients != nil {
		if ingredients, err = u.resolveIngredients(ctx, userID, *in.Ingredients); err != nil {
			return nil, err
		}
	}

	err = u.recipes.Transaction(ctx, func(repo RecipeRepository) error {
		if in.Tags != nil {
			if err := repo.ReplaceTags(ctx, recipe, tags); err != nil {
				return err
			}
		}
		if in.Ingredients != nil {
			if err := repo.ReplaceIngredients(ctx, recipe, ingredients); err != nil {
				return err
			}
		}
		if len(fields) > 0 {
			if err := repo.UpdateFields(ctx, userID, id, fields); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.recipes.FindByID(ctx, userID, id)
}

// Delete removes one of the caller's recipes.
func (u *RecipeUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.recipes.Delete(ctx, userID, id)
}

// resolveTags maps descriptors to the caller's tag rows, creating missing
// ones. Duplicate names within one call resolve to a single row.
func (u *RecipeUsecase) resolveTags(ctx context.Context, userID uint, inputs []TagInput) ([]entity.Tag, error) {
	tags := make([]entity.Tag, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: tag name is required", ErrInvalidInput)
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		tag, err := u.tags.GetOrCreate(ctx, userID, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

// resolveIngredients is the ingredient counterpart of resolveTags.
func (u *RecipeUsecase) resolveIngredients(ctx context.Context, userID uint, inputs []IngredientInput) ([]entity.Ingredient, error) {
	ingredients := make([]entity.Ingredient, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: ingredient name is required", ErrInvalidInput)
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		ingredient, err := u.ingredients.GetOrCreate(ctx, userID, name)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, *ingredient)
	}
	return ingredients, nil
}

// validateScalars enforces the field rules shared by create and update:
// non-empty title, non-negative time, price within decimal(5,2).
func validateScalars(title string, timeMinutes int, price float64) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if timeMinutes < 0 {
		return fmt.Errorf("%w: time_minutes must not be negative", ErrInvalidInput)
	}
	if price < 0 || price >= maxPrice {
		return fmt.Errorf("%w: price must be between 0 and %d", ErrInvalidInput, maxPrice)
	}
	return nil
}

// scalarFields collects the present scalar fields of a partial update into
// column values, validating each one.
func scalarFields(in UpdateRecipeInput) (map[string]any, error) {
	fields := make(map[string]any)
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
		}
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.TimeMinutes != nil {
		if *in.TimeMinutes < 0 {
			return nil, fmt.Errorf("%w: time_minutes must not be negative", ErrInvalidInput)
		}
		fields["time_minutes"] = *in.TimeMinutes
	}
	if in.Price != nil {
		if *in.Price < 0 || *in.Price >= maxPrice {
			return nil, fmt.Errorf("%w: price must be between 0 and %d", ErrInvalidInput, maxPrice)
		}
		fields["price"] = *in.Price
	}
	if in.Link != nil {
		fields["link"] = *in.Link
	}
	return fields, nil
}
