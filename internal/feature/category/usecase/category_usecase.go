// Package usecase implements the business logic for category operations.
package usecase

import (
	"context"

	"grocery_backend/internal/feature/category/domain/entity"
)

// CategoryRepository abstracts the persistence layer for categories.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type CategoryRepository interface {
	// Create persists a new category. It fails with apperr.DuplicateError
	// when a category with the same name already exists.
	Create(ctx context.Context, category *entity.Category) error

	// List returns all categories; empty when none exist.
	List(ctx context.Context) ([]entity.Category, error)

	// Get fetches a category by id, failing with apperr.NotFoundError when
	// no such row exists.
	Get(ctx context.Context, id uint) (*entity.Category, error)

	// Delete removes a category by id, failing with apperr.NotFoundError
	// when no such row exists.
	Delete(ctx context.Context, id uint) error
}

// CategoryUsecase provides business logic for category operations.
type CategoryUsecase struct {
	repo CategoryRepository
}

// NewCategoryUsecase creates a new CategoryUsecase with the given repository.
func NewCategoryUsecase(r CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{repo: r}
}

// Create adds a new category and returns it with its generated id.
func (u *CategoryUsecase) Create(ctx context.Context, name, description string) (*entity.Category, error) {
	category := &entity.Category{Name: name, Description: description}
	if err := u.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// List returns every category.
func (u *CategoryUsecase) List(ctx context.Context) ([]entity.Category, error) {
	return u.repo.List(ctx)
}

// Get returns the category with the given id.
func (u *CategoryUsecase) Get(ctx context.Context, id uint) (*entity.Category, error) {
	return u.repo.Get(ctx, id)
}

// Delete removes the category with the given id.
func (u *CategoryUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
