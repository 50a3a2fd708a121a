// Package usecase implements the business logic for supermarket operations.
package usecase

import (
	"context"

	"grocery_backend/internal/feature/supermarket/domain/entity"
)

// SuperMarketRepository abstracts the persistence layer for supermarkets.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type SuperMarketRepository interface {
	// Create persists a new supermarket. It fails with apperr.DuplicateError
	// when a supermarket with the same name already exists.
	Create(ctx context.Context, supermarket *entity.SuperMarket) error

	// List returns all supermarkets; empty when none exist.
	List(ctx context.Context) ([]entity.SuperMarket, error)

	// Get fetches a supermarket by id, failing with apperr.NotFoundError
	// when no such row exists.
	Get(ctx context.Context, id uint) (*entity.SuperMarket, error)

	// Delete removes a supermarket by id, failing with apperr.NotFoundError
	// when no such row exists.
	Delete(ctx context.Context, id uint) error
}

// SuperMarketUsecase provides business logic for supermarket operations.
type SuperMarketUsecase struct {
	repo SuperMarketRepository
}

// NewSuperMarketUsecase creates a new SuperMarketUsecase with the given repository.
func NewSuperMarketUsecase(r SuperMarketRepository) *SuperMarketUsecase {
	return &SuperMarketUsecase{repo: r}
}

// Create adds a new supermarket and returns it with its generated id.
func (u *SuperMarketUsecase) Create(ctx context.Context, name string) (*entity.SuperMarket, error) {
	supermarket := &entity.SuperMarket{Name: name}
	if err := u.repo.Create(ctx, supermarket); err != nil {
		return nil, err
	}
	return supermarket, nil
}

// List returns every supermarket.
func (u *SuperMarketUsecase) List(ctx context.Context) ([]entity.SuperMarket, error) {
	return u.repo.List(ctx)
}

// Get returns the supermarket with the given id.
func (u *SuperMarketUsecase) Get(ctx context.Context, id uint) (*entity.SuperMarket, error) {
	return u.repo.Get(ctx, id)
}

// Delete removes the supermarket with the given id.
func (u *SuperMarketUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
