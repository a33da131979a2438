package dto

// UpdateTagReq is the PATCH /tags/:id request body.
type UpdateTagReq struct {
	Name string `json:"name" binding:"required,max=255"`
}

// UpdateIngredientReq is the PATCH /ingredients/:id request body.
type UpdateIngredientReq struct {
	Name string `json:"name" binding:"required,max=255"`
}
