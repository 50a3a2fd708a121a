// Package entity defines the domain entities for the entries feature.
package entity

import "time"

// GroceryItem is a catalog item referenced by entries. Item names are unique
// so the same item is reused across entries.
type GroceryItem struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:20;not null"`
}

// TableName maps the entity onto the grocery_items table.
func (GroceryItem) TableName() string { return "grocery_items" }

// GroceryEntry records a planned or completed purchase of an item by a user.
type GroceryEntry struct {
	ID            uint `gorm:"primaryKey"`
	ItemID        uint `gorm:"not null"`
	CategoryID    uint `gorm:"not null"`
	UserID        uint `gorm:"not null"`
	SupermarketID uint
	Quantity      int
	Description   string `gorm:"size:50"`
	Purchased     bool
	DatePurchased time.Time `gorm:"autoCreateTime"`
}

// TableName maps the entity onto the grocery_entries table.
func (GroceryEntry) TableName() string { return "grocery_entries" }

// EntryReport is one row of the not-purchased report, an entry joined with
// its item and category names.
type EntryReport struct {
	ItemName     string
	CategoryName string
	Quantity     int
	Description  string
	Purchased    bool
}
