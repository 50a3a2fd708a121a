// Package entity defines the domain entities for the bucket feature.
package entity

import "time"

// Bucket is a named shopping list container owned by exactly one user.
// The (owner, name) pair is unique: distinct users may reuse a bucket name,
// but one user cannot have two buckets with the same name.
type Bucket struct {
	ID uint `gorm:"primaryKey"`

	// UserID references the owning user.
	UserID uint `gorm:"uniqueIndex:idx_bucket_owner_name;not null"`

	// Name is the bucket's natural key within its owner's scope.
	Name string `gorm:"uniqueIndex:idx_bucket_owner_name;size:30;not null"`

	// CreatedAt is the timestamp when the bucket was created.
	CreatedAt time.Time
}

// TableName maps the entity onto the buckets table.
func (Bucket) TableName() string { return "buckets" }
