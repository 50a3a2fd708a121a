// Package resource provides a generic GORM-backed repository for uniquely
// keyed resources. The category, supermarket and bucket adapters are thin
// specializations of it, so the uniqueness and not-found translation logic
// exists exactly once.
package resource

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"grocery_backend/internal/shared/apperr"
)

// Repository implements create/list/get/delete for a single entity type.
// Uniqueness of the natural key is enforced by the database; this layer only
// translates the driver failure into a typed outcome.
type Repository[T any] struct {
	db       *gorm.DB
	resource string
	// name extracts the natural key used in duplicate error messages.
	name func(*T) string
}

// NewRepository creates a repository for the given resource kind.
// resource is the lowercase kind used in client-facing messages, e.g.
// "category"; name extracts the natural key from an entity.
func NewRepository[T any](db *gorm.DB, resource string, name func(*T) string) *Repository[T] {
	return &Repository[T]{db: db, resource: resource, name: name}
}

// Create inserts the entity inside its own transaction. A unique-constraint
// violation rolls the insert back and fails with apperr.DuplicateError; on
// success the generated id is populated on m by the insert itself.
func (r *Repository[T]) Create(ctx context.Context, m *T) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	if err != nil {
		// Requires gorm.Config.TranslateError so every driver reports
		// constraint violations the same way.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &apperr.DuplicateError{Resource: r.resource, Name: r.name(m)}
		}
		return err
	}
	return nil
}

// List returns all rows matching the optional query conditions, in primary
// key order. An empty result is a valid outcome, not an error.
func (r *Repository[T]) List(ctx context.Context, conds ...any) ([]T, error) {
	out := make([]T, 0)
	q := r.db.WithContext(ctx)
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches the row with the given id, narrowed by the optional conditions.
// A row that does not match the conditions behaves exactly like an absent row.
func (r *Repository[T]) Get(ctx context.Context, id uint, conds ...any) (*T, error) {
	var m T
	q := r.db.WithContext(ctx)
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	if err := q.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperr.NotFoundError{Resource: r.resource, ID: id}
		}
		return nil, err
	}
	return &m, nil
}

// Delete removes the row with the given id inside its own transaction.
// Deleting an id that does not exist (or no longer exists) fails with
// apperr.NotFoundError, so a second delete of the same id is a discoverable
// failure rather than a silent success.
func (r *Repository[T]) Delete(ctx context.Context, id uint, conds ...any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(conds) > 0 {
			tx = tx.Where(conds[0], conds[1:]...)
		}
		res := tx.Delete(new(T), id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &apperr.NotFoundError{Resource: r.resource, ID: id}
		}
		return nil
	})
}
