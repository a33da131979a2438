package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/transport/http/dto"
	"recipe_backend/internal/feature/recipes/usecase"
)

// RecipeUsecase defines the recipe operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type RecipeUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Recipe, error)
	Get(ctx context.Context, userID, id uint) (*entity.Recipe, error)
	Create(ctx context.Context, userID uint, in usecase.CreateRecipeInput) (*entity.Recipe, error)
	Update(ctx context.Context, userID, id uint, in usecase.UpdateRecipeInput) (*entity.Recipe, error)
	Delete(ctx context.Context, userID, id uint) error
}

// RecipeHandler handles the /recipes endpoints.
type RecipeHandler struct {
	uc RecipeUsecase
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(uc RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// toTagInputs converts tag descriptors from the wire shape.
func toTagInputs(refs []dto.TagRef) []usecase.TagInput {
	out := make([]usecase.TagInput, 0, len(refs))
	for _, ref := range refs {
		out = append(out, usecase.TagInput{Name: ref.Name})
	}
	return out
}

// toIngredientInputs converts ingredient descriptors from the wire shape.
func toIngredientInputs(refs []dto.IngredientRef) []usecase.IngredientInput {
	out := make([]usecase.IngredientInput, 0, len(refs))
	for _, ref := range refs {
		out = append(out, usecase.IngredientInput{Name: ref.Name})
	}
	return out
}

// List returns the caller's recipes, newest first, in the list shape.
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.uc.List(c.Request.Context(), authUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]dto.RecipeResp, 0, len(recipes))
	for i := range recipes {
		out = append(out, dto.NewRecipeResp(&recipes[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns one recipe in the detail shape, or 404 when the row is absent
// or owned by someone else.
func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	recipe, err := h.uc.Get(c.Request.Context(), authUserID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeDetailResp(recipe))
}

// Create makes a new recipe owned by the caller and returns it in the
// detail shape with resolved tags and ingredients.
func (h *RecipeHandler) Create(c *gin.Context) {
	var req dto.CreateRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	recipe, err := h.uc.Create(c.Request.Context(), authUserID(c), usecase.CreateRecipeInput{
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
		Tags:        toTagInputs(req.Tags),
		Ingredients: toIngredientInputs(req.Ingredients),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewRecipeDetailResp(recipe))
}

// Patch applies a partial update. Unknown fields in the body, including any
// attempt to set an owner, are discarded by the DTO; supplied fields are
// applied, omitted ones keep their values.
func (h *RecipeHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.PatchRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	h.update(c, id, usecase.UpdateRecipeInput{
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
		Tags:        patchTags(req.Tags),
		Ingredients: patchIngredients(req.Ingredients),
	})
}

// Put applies a full update: every scalar field is required at the binding
// layer, then the same partial-update path runs with all fields present.
func (h *RecipeHandler) Put(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.PutRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	h.update(c, id, usecase.UpdateRecipeInput{
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
		Tags:        patchTags(req.Tags),
		Ingredients: patchIngredients(req.Ingredients),
	})
}

// update runs the usecase update and writes the detail shape.
func (h *RecipeHandler) update(c *gin.Context, id uint, in usecase.UpdateRecipeInput) {
	recipe, err := h.uc.Update(c.Request.Context(), authUserID(c), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeDetailResp(recipe))
}

// Delete removes one of the caller's recipes.
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), authUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// patchTags preserves the omitted-versus-empty distinction while converting
// to the usecase shape.
func patchTags(refs *[]dto.TagRef) *[]usecase.TagInput {
	if refs == nil {
		return nil
	}
	in := toTagInputs(*refs)
	return &in
}

// patchIngredients is the ingredient counterpart of patchTags.
func patchIngredients(refs *[]dto.IngredientRef) *[]usecase.IngredientInput {
	if refs == nil {
		return nil
	}
	in := toIngredientInputs(*refs)
	return &in
}
