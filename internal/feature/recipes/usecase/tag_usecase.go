package usecase

import (
	"context"
	"fmt"
	"strings"

	"recipe_backend/internal/feature/recipes/domain/entity"
)

// TagUsecase provides the owner-scoped tag listing and maintenance
// operations exposed by the /tags endpoints.
type TagUsecase struct {
	tags TagRepository
}

// NewTagUsecase creates a new TagUsecase.
func NewTagUsecase(tags TagRepository) *TagUsecase {
	return &TagUsecase{tags: tags}
}

// List returns the caller's tags ordered by descending name.
func (u *TagUsecase) List(ctx context.Context, userID uint) ([]entity.Tag, error) {
	return u.tags.ListByUser(ctx, userID)
}

// Update renames one of the caller's tags.
func (u *TagUsecase) Update(ctx context.Context, userID, id uint, name string) (*entity.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: tag name is required", ErrInvalidInput)
	}
	return u.tags.Update(ctx, userID, id, name)
}

// Delete removes one of the caller's tags.
func (u *TagUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.tags.Delete(ctx, userID, id)
}
