package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/transport/http/dto"
)

// IngredientUsecase defines the ingredient operations the handler depends on.
type IngredientUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Ingredient, error)
	Update(ctx context.Context, userID, id uint, name string) (*entity.Ingredient, error)
	Delete(ctx context.Context, userID, id uint) error
}

// IngredientHandler handles the /ingredients endpoints.
type IngredientHandler struct {
	uc IngredientUsecase
}

// NewIngredientHandler creates a new IngredientHandler.
func NewIngredientHandler(uc IngredientUsecase) *IngredientHandler {
	return &IngredientHandler{uc: uc}
}

// List returns the caller's ingredients ordered by descending name.
func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.uc.List(c.Request.Context(), authUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewIngredientResps(ingredients))
}

// Update renames one of the caller's ingredients.
func (h *IngredientHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateIngredientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	ingredient, err := h.uc.Update(c.Request.Context(), authUserID(c), id, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.IngredientResp{ID: ingredient.ID, Name: ingredient.Name})
}

// Delete removes one of the caller's ingredients.
func (h *IngredientHandler) Delete(c *gin.Context) {
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
