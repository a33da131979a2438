// Package dto defines data transfer objects for the recipes HTTP API.
package dto

// TagRef is a tag descriptor in a recipe payload. It carries only a name;
// resolution against the caller's existing tags happens server-side.
type TagRef struct {
	Name string `json:"name" binding:"required,max=255"`
}

// IngredientRef is the ingredient counterpart of TagRef.
type IngredientRef struct {
	Name string `json:"name" binding:"required,max=255"`
}

// CreateRecipeReq is the POST /recipes request body.
// There is deliberately no owner field anywhere in these request types:
// the owner is always the authenticated caller.
type CreateRecipeReq struct {
	Title       string          `json:"title" binding:"required,max=255"`
	Description string          `json:"description"`
	TimeMinutes int             `json:"time_minutes" binding:"gte=0"`
	Price       float64         `json:"price" binding:"gte=0,lt=1000"`
	Link        string          `json:"link" binding:"max=255"`
	Tags        []TagRef        `json:"tags" binding:"omitempty,dive"`
	Ingredients []IngredientRef `json:"ingredients" binding:"omitempty,dive"`
}

// PatchRecipeReq is the PATCH /recipes/:id request body. Every field is
// optional; nil pointers distinguish "omitted" from "present". For Tags and
// Ingredients a present-but-empty list clears the set, while omission keeps
// the current associations.
type PatchRecipeReq struct {
	Title       *string          `json:"title" binding:"omitempty,max=255"`
	Description *string          `json:"description"`
	TimeMinutes *int             `json:"time_minutes" binding:"omitempty,gte=0"`
	Price       *float64         `json:"price" binding:"omitempty,gte=0,lt=1000"`
	Link        *string          `json:"link" binding:"omitempty,max=255"`
	Tags        *[]TagRef        `json:"tags" binding:"omitempty,dive"`
	Ingredients *[]IngredientRef `json:"ingredients" binding:"omitempty,dive"`
}

// PutRecipeReq is the PUT /recipes/:id request body. All scalar fields are
// mandatory; pointers are used so that zero values (time_minutes of 0, an
// empty description) still count as present. Tags and Ingredients keep the
// omitted-versus-empty distinction even on full updates.
type PutRecipeReq struct {
	Title       *string          `json:"title" binding:"required,max=255"`
	Description *string          `json:"description" binding:"required"`
	TimeMinutes *int             `json:"time_minutes" binding:"required,gte=0"`
	Price       *float64         `json:"price" binding:"required,gte=0,lt=1000"`
	Link        *string          `json:"link" binding:"required,max=255"`
	Tags        *[]TagRef        `json:"tags" binding:"omitempty,dive"`
	Ingredients *[]IngredientRef `json:"ingredients" binding:"omitempty,dive"`
}
