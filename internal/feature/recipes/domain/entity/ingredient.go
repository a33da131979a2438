package entity

// Ingredient has the same shape and ownership rules as Tag but an
// independent lifecycle.
type Ingredient struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_ingredients_user_name"`
	Name   string `gorm:"size:255;not null;uniqueIndex:idx_ingredients_user_name"`
}
