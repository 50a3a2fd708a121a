// Package entity defines the domain entities for the supermarket feature.
package entity

// SuperMarket is a global supermarket entry. Supermarkets are unowned and
// their name is unique across the whole table.
type SuperMarket struct {
	ID uint `gorm:"primaryKey"`

	// Name is the natural key of a supermarket.
	Name string `gorm:"uniqueIndex;size:20;not null"`
}

// TableName maps the entity onto the supermarkets table.
func (SuperMarket) TableName() string { return "supermarkets" }
