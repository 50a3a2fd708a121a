// Package usecase implements the business logic for grocery entries.
package usecase

import (
	"context"

	userentity "grocery_backend/internal/feature/auth/domain/entity"
	"grocery_backend/internal/feature/entries/domain/entity"
)

// EntryRepository abstracts the persistence layer for items and entries.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type EntryRepository interface {
	// EnsureItem returns the catalog item with the given name, creating it
	// when it does not exist yet.
	EnsureItem(ctx context.Context, name string) (*entity.GroceryItem, error)

	// AddEntry persists a new grocery entry.
	AddEntry(ctx context.Context, entry *entity.GroceryEntry) error

	// ListNotPurchased returns the entries that have not been purchased yet,
	// joined with their item and category names.
	ListNotPurchased(ctx context.Context) ([]entity.EntryReport, error)
}

// AddInput carries the fields of a new entry.
type AddInput struct {
	ItemName      string
	CategoryID    uint
	SupermarketID uint
	Quantity      int
	Description   string
}

// EntriesUsecase provides business logic for grocery entries.
type EntriesUsecase struct {
	repo EntryRepository
}

// NewEntriesUsecase creates a new EntriesUsecase with the given repository.
func NewEntriesUsecase(r EntryRepository) *EntriesUsecase {
	return &EntriesUsecase{repo: r}
}

// Add records a new entry for the given user, creating the catalog item on
// first use of its name.
func (u *EntriesUsecase) Add(ctx context.Context, user *userentity.User, in AddInput) (*entity.GroceryEntry, error) {
	item, err := u.repo.EnsureItem(ctx, in.ItemName)
	if err != nil {
		return nil, err
	}
	entry := &entity.GroceryEntry{
		ItemID:        item.ID,
		CategoryID:    in.CategoryID,
		UserID:        user.ID,
		SupermarketID: in.SupermarketID,
		Quantity:      in.Quantity,
		Description:   in.Description,
	}
	if err := u.repo.AddEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListNotPurchased returns the not-yet-purchased entries as report rows.
func (u *EntriesUsecase) ListNotPurchased(ctx context.Context) ([]entity.EntryReport, error) {
	return u.repo.ListNotPurchased(ctx)
}
