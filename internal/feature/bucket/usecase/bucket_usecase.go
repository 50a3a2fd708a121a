// Package usecase implements the business logic for bucket operations.
// Every operation is scoped to the owning user: a bucket that belongs to
// someone else behaves exactly like a bucket that does not exist.
package usecase

import (
	"context"
	"errors"

	userentity "grocery_backend/internal/feature/auth/domain/entity"
	"grocery_backend/internal/feature/bucket/domain/entity"
	"grocery_backend/internal/shared/apperr"
)

// BucketRepository abstracts the persistence layer for buckets.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type BucketRepository interface {
	// Create persists a new bucket. It fails with apperr.DuplicateError when
	// the owner already has a bucket with the same name.
	Create(ctx context.Context, bucket *entity.Bucket) error

	// ListByOwner returns all buckets of the given owner; empty when none.
	ListByOwner(ctx context.Context, ownerID uint) ([]entity.Bucket, error)

	// GetForOwner fetches the bucket with the given id if it belongs to the
	// owner, failing with apperr.NotFoundError otherwise.
	GetForOwner(ctx context.Context, ownerID, id uint) (*entity.Bucket, error)

	// DeleteForOwner removes the bucket with the given id if it belongs to
	// the owner, failing with apperr.NotFoundError otherwise.
	DeleteForOwner(ctx context.Context, ownerID, id uint) error
}

// BucketUsecase provides business logic for bucket operations.
type BucketUsecase struct {
	repo BucketRepository
}

// NewBucketUsecase creates a new BucketUsecase with the given repository.
func NewBucketUsecase(r BucketRepository) *BucketUsecase {
	return &BucketUsecase{repo: r}
}

// Create adds a bucket owned by the given user. On a name conflict the
// duplicate error carries the owner's display name so the client message
// identifies both the bucket and the user.
func (u *BucketUsecase) Create(ctx context.Context, owner *userentity.User, name string) (*entity.Bucket, error) {
	bucket := &entity.Bucket{UserID: owner.ID, Name: name}
	if err := u.repo.Create(ctx, bucket); err != nil {
		var dup *apperr.DuplicateError
		if errors.As(err, &dup) {
			dup.Owner = owner.Name
		}
		return nil, err
	}
	return bucket, nil
}

// List returns the buckets owned by the given user.
func (u *BucketUsecase) List(ctx context.Context, owner *userentity.User) ([]entity.Bucket, error) {
	return u.repo.ListByOwner(ctx, owner.ID)
}

// Get returns the owner's bucket with the given id.
func (u *BucketUsecase) Get(ctx context.Context, owner *userentity.User, id uint) (*entity.Bucket, error) {
	return u.repo.GetForOwner(ctx, owner.ID, id)
}

// Delete removes the owner's bucket with the given id.
func (u *BucketUsecase) Delete(ctx context.Context, owner *userentity.User, id uint) error {
	return u.repo.DeleteForOwner(ctx, owner.ID, id)
}
