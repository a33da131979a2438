package dto

import "recipe_backend/internal/feature/recipes/domain/entity"

// TagResp is the public shape of a tag.
type TagResp struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// IngredientResp is the public shape of an ingredient.
type IngredientResp struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RecipeResp is the list shape of a recipe. The detail shape extends it by
// one field; the two are kept as distinct structs rather than a single
// shape with conditionally populated fields.
type RecipeResp struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	TimeMinutes int              `json:"time_minutes"`
	Price       float64          `json:"price"`
	Link        string           `json:"link"`
	Tags        []TagResp        `json:"tags"`
	Ingredients []IngredientResp `json:"ingredients"`
}

// RecipeDetailResp is the detail shape: the list shape plus the description.
type RecipeDetailResp struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	TimeMinutes int              `json:"time_minutes"`
	Price       float64          `json:"price"`
	Link        string           `json:"link"`
	Tags        []TagResp        `json:"tags"`
	Ingredients []IngredientResp `json:"ingredients"`
	Description string           `json:"description"`
}

// NewTagResps converts tag entities to their response shape.
func NewTagResps(tags []entity.Tag) []TagResp {
	out := make([]TagResp, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagResp{ID: t.ID, Name: t.Name})
	}
	return out
}

// NewIngredientResps converts ingredient entities to their response shape.
func NewIngredientResps(ingredients []entity.Ingredient) []IngredientResp {
	out := make([]IngredientResp, 0, len(ingredients))
	for _, i := range ingredients {
		out = append(out, IngredientResp{ID: i.ID, Name: i.Name})
	}
	return out
}

// NewRecipeResp converts a recipe entity to the list shape.
func NewRecipeResp(r *entity.Recipe) RecipeResp {
	return RecipeResp{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Tags:        NewTagResps(r.Tags),
		Ingredients: NewIngredientResps(r.Ingredients),
	}
}

// NewRecipeDetailResp converts a recipe entity to the detail shape.
func NewRecipeDetailResp(r *entity.Recipe) RecipeDetailResp {
	return RecipeDetailResp{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Tags:        NewTagResps(r.Tags),
		Ingredients: NewIngredientResps(r.Ingredients),
		Description: r.Description,
	}
}
