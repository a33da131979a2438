package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/usecase"
)

// setupTestDB prepares an in-memory SQLite database for tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Tag{}, &entity.Ingredient{}, &entity.Recipe{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// seedTag inserts a tag row for tests.
func seedTag(t *testing.T, db *gorm.DB, userID uint, name string) *entity.Tag {
	t.Helper()

	tag := &entity.Tag{UserID: userID, Name: name}
	err := db.Create(tag).Error
	require.NoError(t, err, "failed to seed tag")

	return tag
}

// countTags counts the tag rows matching (userID, name).
func countTags(t *testing.T, db *gorm.DB, userID uint, name string) int64 {
	t.Helper()

	var count int64
	err := db.Model(&entity.Tag{}).Where("user_id = ? AND name = ?", userID, name).Count(&count).Error
	require.NoError(t, err, "failed to count tags")

	return count
}

func TestNewTagPostgres(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewTagPostgres(db)

	assert.NotNil(t, repo, "repository should not be nil")
	assert.NotNil(t, repo.db, "database connection should not be nil")
}

func TestTagPostgres_GetOrCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates a missing tag", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewTagPostgres(db)

		tag, err := repo.GetOrCreate(context.Background(), 1, "Thai")

		require.NoError(t, err)
		assert.NotZero(t, tag.ID)
		assert.Equal(t, "Thai", tag.Name)
		assert.Equal(t, uint(1), tag.UserID)
		assert.EqualValues(t, 1, countTags(t, db, 1, "Thai"))
	})

	t.Run("reuses an existing tag instead of duplicating it", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewTagPostgres(db)
		existing := seedTag(t, db, 1, "Dinner")

		tag, err := repo.GetOrCreate(context.Background(), 1, "Dinner")

		require.NoError(t, err)
		assert.Equal(t, existing.ID, tag.ID)
		assert.EqualValues(t, 1, countTags(t, db, 1, "Dinner"))
	})

	t.Run("is idempotent across repeated calls", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewTagPostgres(db)

		first, err := repo.GetOrCreate(context.Background(), 1, "Vegan")
		require.NoError(t, err)
		second, err := repo.GetOrCreate(context.Background(), 1, "Vegan")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.EqualValues(t, 1, countTags(t, db, 1, "Vegan"))
	})

	t.Run("same name for different users yields separate rows", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewTagPostgres(db)

		tagA, err := repo.GetOrCreate(context.Background(), 1, "Breakfast")
		require.NoError(t, err)
		tagB, err := repo.GetOrCreate(context.Background(), 2, "Breakfast")
		require.NoError(t, err)

		assert.NotEqual(t, tagA.ID, tagB.ID)
		assert.EqualValues(t, 1, countTags(t, db, 1, "Breakfast"))
		assert.EqualValues(t, 1, countTags(t, db, 2, "Breakfast"))
	})

	t.Run("resolves to the winning row after losing an insert race", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewTagPostgres(db)

		// Simulate the race: the row appears between the lookup and the
		// insert. A direct duplicate insert trips the unique index, and
		// the repository must fall back to the existing row.
		winner := seedTag(t, db, 1, "Dessert")
		err := db.Create(&entity.Tag{UserID: 1, Name: "Dessert"}).Error
		require.Error(t, err, "unique index should reject the duplicate")

		tag, err := repo.GetOrCreate(context.Background(), 1, "Dessert")

		require.NoError(t, err)
		assert.Equal(t, winner.ID, tag.ID)
		assert.EqualValues(t, 1, countTags(t, db, 1, "Dessert"))
	})
}

func TestTagPostgres_ListByUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		setupFunc     func(t *testing.T, db *gorm.DB)
		userID        uint
		expectedNames []string
	}{
		{
			name: "orders by descending name",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedTag(t, db, 1, "Breakfast")
				seedTag(t, db, 1, "Vegan")
				seedTag(t, db, 1, "Dinner")
			},
			userID:        1,
			expectedNames: []string{"Vegan", "Dinner", "Breakfast"},
		},
		{
			name: "filters out other users' tags",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedTag(t, db, 1, "Thai")
				seedTag(t, db, 2, "Fruity")
			},
			userID:        1,
			expectedNames: []string{"Thai"},
		},
		{
			name:          "returns empty list when the user has no tags",
			setupFunc:     func(t *testing.T, db *gorm.DB) {},
			userID:        1,
			expectedNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewTagPostgres(db)
			tt.setupFunc(t, db)

			tags, err := repo.ListByUser(context.Background(), tt.userID)

			require.NoError(t, err)
			require.Len(t, tags, len(tt.expectedNames))
			for i, name := range tt.expectedNames {
				assert.Equal(t, name, tags[i].Name)
			}
		})
	}
}

func TestTagPostgres_Update(t *testing.T) {
	t.Parallel()

	t.Run("renames an owned tag", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewTagPostgres(db)
		tag := seedTag(t, db, 1, "Dessert")

		updated, err := repo.Update(context.Background(), 1, tag.ID, "After Dinner")

		require.NoError(t, err)
		assert.Equal(t, tag.ID, updated.ID)
		assert.Equal(t, "After Dinner", updated.Name)
	})

	t.Run("another user's tag is reported as not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewTagPostgres(db)
		tag := seedTag(t, db, 1, "Dessert")

		_, err := repo.Update(context.Background(), 2, tag.ID, "Stolen")

		assert.ErrorIs(t, err, usecase.ErrTagNotFound)
		assert.EqualValues(t, 1, countTags(t, db, 1, "Dessert"), "tag must be untouched")
	})

	t.Run("missing tag is reported as not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewTagPostgres(db)

		_, err := repo.Update(context.Background(), 1, 999, "Ghost")

		assert.ErrorIs(t, err, usecase.ErrTagNotFound)
	})
}

func TestTagPostgres_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes an owned tag", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewTagPostgres(db)
		tag := seedTag(t, db, 1, "Dessert")

		err := repo.Delete(context.Background(), 1, tag.ID)

		require.NoError(t, err)
		assert.EqualValues(t, 0, countTags(t, db, 1, "Dessert"))
	})

	t.Run("another user's tag survives and is reported as not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewTagPostgres(db)
		tag := seedTag(t, db, 1, "Dessert")

		err := repo.Delete(context.Background(), 2, tag.ID)

		assert.ErrorIs(t, err, usecase.ErrTagNotFound)
		assert.EqualValues(t, 1, countTags(t, db, 1, "Dessert"), "tag must still exist")
	})
}
