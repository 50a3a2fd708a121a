// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// Users are created at registration and are immutable afterwards; there is no
// update or delete path.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the user's given name, used as the display name in
	// owner-scoped error messages.
	Name string `gorm:"size:30;not null"`

	// LastName is the user's family name.
	LastName string `gorm:"size:30;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time
}
