// Package adapters provides the repository implementation for the entries feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"grocery_backend/internal/feature/entries/domain/entity"
	"grocery_backend/internal/feature/entries/usecase"
)

// entriesGorm is the GORM implementation of the EntryRepository interface.
type entriesGorm struct {
	db *gorm.DB
}

var _ usecase.EntryRepository = (*entriesGorm)(nil)

// NewEntryRepository creates an entries repository on the given connection.
func NewEntryRepository(db *gorm.DB) *entriesGorm {
	return &entriesGorm{db: db}
}

// EnsureItem finds or creates the catalog item with the given name. A
// concurrent create racing on the unique name loses the insert and falls
// back to reading the committed row.
func (r *entriesGorm) EnsureItem(ctx context.Context, name string) (*entity.GroceryItem, error) {
	var item entity.GroceryItem
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error
	if err == nil {
		return &item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item = entity.GroceryItem{Name: name}
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error; err != nil {
				return nil, err
			}
			return &item, nil
		}
		return nil, err
	}
	return &item, nil
}

// AddEntry inserts the entry inside its own transaction.
func (r *entriesGorm) AddEntry(ctx context.Context, entry *entity.GroceryEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})
}

// ListNotPurchased joins entries with their item and category names.
func (r *entriesGorm) ListNotPurchased(ctx context.Context) ([]entity.EntryReport, error) {
	reports := make([]entity.EntryReport, 0)
	err := r.db.WithContext(ctx).
		Table("grocery_entries").
		Select("grocery_items.name AS item_name, categories.name AS category_name, "+
			"grocery_entries.quantity, grocery_entries.description, grocery_entries.purchased").
		Joins("JOIN grocery_items ON grocery_items.id = grocery_entries.item_id").
		Joins("JOIN categories ON categories.id = grocery_entries.category_id").
		Where("grocery_entries.purchased = ?", false).
		Scan(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
