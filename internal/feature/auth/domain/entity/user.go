// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// Recipes, tags and ingredients are owned by exactly one user; deleting the
// user removes everything it owns.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's login identifier.
	// It is normalized before persisting and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored or serialized.
	Password string `gorm:"size:255;not null"`

	// Name is the user's display name.
	Name string `gorm:"size:255"`

	// IsActive controls whether the user may authenticate.
	IsActive bool `gorm:"not null;default:true"`

	// IsStaff marks users with access to administrative tooling.
	IsStaff bool `gorm:"not null;default:false"`

	// IsSuperuser marks users with unrestricted administrative access.
	IsSuperuser bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
