package entity

// Tag labels recipes for filtering. Tags are private to their owner: two
// users can each have a "Dinner" tag without conflict, while the composite
// unique index keeps a single owner from accumulating duplicates and closes
// the get-or-create race at the store level.
type Tag struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_tags_user_name"`
	Name   string `gorm:"size:255;not null;uniqueIndex:idx_tags_user_name"`
}
