// Package adapters provides repository implementations for the recipes feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/usecase"
)

// tagPostgres is the Postgres implementation of the TagRepository interface.
type tagPostgres struct {
	db *gorm.DB
}

// Compile-time check that tagPostgres implements TagRepository.
var _ usecase.TagRepository = (*tagPostgres)(nil)

// NewTagPostgres creates a new tagPostgres backed by the given gorm.DB.
func NewTagPostgres(db *gorm.DB) *tagPostgres {
	return &tagPostgres{db: db}
}

// ListByUser returns the owner's tags ordered by descending name.
func (r *tagPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.Tag, error) {
	var tags []entity.Tag
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name DESC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetOrCreate returns the owner's tag with the given name, inserting it
// first when absent. A concurrent insert of the same (user_id, name) is
// rejected by the unique index; in that case the row is looked up once more
// instead of surfacing the conflict.
func (r *tagPostgres) GetOrCreate(ctx context.Context, userID uint, name string) (*entity.Tag, error) {
	var tag entity.Tag
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = entity.Tag{UserID: userID, Name: name}
	createErr := r.db.WithContext(ctx).Create(&tag).Error
	if createErr == nil {
		return &tag, nil
	}

	// Lost the race: the winning row satisfies this call.
	var existing entity.Tag
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&existing).Error; err == nil {
		return &existing, nil
	}
	return nil, createErr
}

// Update renames an owned tag. Foreign and absent rows both yield
// usecase.ErrTagNotFound.
func (r *tagPostgres) Update(ctx context.Context, userID, id uint, name string) (*entity.Tag, error) {
	var tag entity.Tag
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTagNotFound
		}
		return nil, err
	}
	tag.Name = name
	if err := r.db.WithContext(ctx).Save(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// Delete removes an owned tag. Foreign and absent rows both yield
// usecase.ErrTagNotFound.
func (r *tagPostgres) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Tag{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTagNotFound
	}
	return nil
}
