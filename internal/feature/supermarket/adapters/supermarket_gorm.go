// Package adapters provides the repository implementation for the supermarket feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"grocery_backend/internal/feature/supermarket/domain/entity"
	"grocery_backend/internal/feature/supermarket/usecase"
	"grocery_backend/internal/platform/resource"
)

// supermarketGorm specializes the generic resource repository for supermarkets.
type supermarketGorm struct {
	repo *resource.Repository[entity.SuperMarket]
}

var _ usecase.SuperMarketRepository = (*supermarketGorm)(nil)

// NewSuperMarketRepository creates a supermarket repository on the given connection.
func NewSuperMarketRepository(db *gorm.DB) *supermarketGorm {
	return &supermarketGorm{
		repo: resource.NewRepository(db, "supermarket", func(s *entity.SuperMarket) string { return s.Name }),
	}
}

func (r *supermarketGorm) Create(ctx context.Context, supermarket *entity.SuperMarket) error {
	return r.repo.Create(ctx, supermarket)
}

func (r *supermarketGorm) List(ctx context.Context) ([]entity.SuperMarket, error) {
	return r.repo.List(ctx)
}

func (r *supermarketGorm) Get(ctx context.Context, id uint) (*entity.SuperMarket, error) {
	return r.repo.Get(ctx, id)
}

func (r *supermarketGorm) Delete(ctx context.Context, id uint) error {
	return r.repo.Delete(ctx, id)
}
