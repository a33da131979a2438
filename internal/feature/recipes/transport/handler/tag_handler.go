package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/transport/http/dto"
)

// TagUsecase defines the tag operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TagUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Tag, error)
	Update(ctx context.Context, userID, id uint, name string) (*entity.Tag, error)
	Delete(ctx context.Context, userID, id uint) error
}

// TagHandler handles the /tags endpoints.
type TagHandler struct {
	uc TagUsecase
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(uc TagUsecase) *TagHandler {
	return &TagHandler{uc: uc}
}

// List returns the caller's tags ordered by descending name.
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.uc.List(c.Request.Context(), authUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTagResps(tags))
}

// Update renames one of the caller's tags.
func (h *TagHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateTagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	tag, err := h.uc.Update(c.Request.Context(), authUserID(c), id, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TagResp{ID: tag.ID, Name: tag.Name})
}

// Delete removes one of the caller's tags.
func (h *TagHandler) Delete(c *gin.Context) {
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
