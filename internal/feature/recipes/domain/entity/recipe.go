// Package entity defines the domain entities for the recipes feature.
package entity

import "time"

// Recipe is a recipe aggregate owned by a single user.
// The owner is set at creation time and never changes afterwards; update
// requests that try to reassign it are ignored at the transport boundary.
type Recipe struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index;not null"`

	// Title is the only required scalar field.
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`

	// TimeMinutes is the preparation time and is never negative.
	TimeMinutes int `gorm:"not null"`

	// Price is stored with 5 total digits, 2 fractional (max 999.99).
	Price float64 `gorm:"type:decimal(5,2);not null"`

	Link string `gorm:"size:255"`

	// Tags and Ingredients are many-to-many; all associated rows belong to
	// the same owner as the recipe.
	Tags        []Tag        `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
