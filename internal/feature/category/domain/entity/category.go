// Package entity defines the domain entities for the category feature.
package entity

// Category is a global grocery category. Categories are unowned and their
// name is unique across the whole table.
type Category struct {
	ID uint `gorm:"primaryKey"`

	// Name is the natural key of a category.
	Name string `gorm:"uniqueIndex;size:20;not null"`

	// Description is optional free text.
	Description string `gorm:"size:50"`
}

// TableName maps the entity onto the categories table.
func (Category) TableName() string { return "categories" }
