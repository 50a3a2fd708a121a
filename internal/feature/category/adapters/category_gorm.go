// Package adapters provides the repository implementation for the category feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"grocery_backend/internal/feature/category/domain/entity"
	"grocery_backend/internal/feature/category/usecase"
	"grocery_backend/internal/platform/resource"
)

// categoryGorm specializes the generic resource repository for categories.
type categoryGorm struct {
	repo *resource.Repository[entity.Category]
}

var _ usecase.CategoryRepository = (*categoryGorm)(nil)

// NewCategoryRepository creates a category repository on the given connection.
func NewCategoryRepository(db *gorm.DB) *categoryGorm {
	return &categoryGorm{
		repo: resource.NewRepository(db, "category", func(c *entity.Category) string { return c.Name }),
	}
}

func (r *categoryGorm) Create(ctx context.Context, category *entity.Category) error {
	return r.repo.Create(ctx, category)
}

func (r *categoryGorm) List(ctx context.Context) ([]entity.Category, error) {
	return r.repo.List(ctx)
}

func (r *categoryGorm) Get(ctx context.Context, id uint) (*entity.Category, error) {
	return r.repo.Get(ctx, id)
}

func (r *categoryGorm) Delete(ctx context.Context, id uint) error {
	return r.repo.Delete(ctx, id)
}
