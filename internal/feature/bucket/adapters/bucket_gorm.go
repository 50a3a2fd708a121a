// Package adapters provides the repository implementation for the bucket feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"grocery_backend/internal/feature/bucket/domain/entity"
	"grocery_backend/internal/feature/bucket/usecase"
	"grocery_backend/internal/platform/resource"
)

// bucketGorm specializes the generic resource repository for buckets,
// threading the owner through every read and delete.
type bucketGorm struct {
	repo *resource.Repository[entity.Bucket]
}

var _ usecase.BucketRepository = (*bucketGorm)(nil)

// NewBucketRepository creates a bucket repository on the given connection.
func NewBucketRepository(db *gorm.DB) *bucketGorm {
	return &bucketGorm{
		repo: resource.NewRepository(db, "bucket", func(b *entity.Bucket) string { return b.Name }),
	}
}

func (r *bucketGorm) Create(ctx context.Context, bucket *entity.Bucket) error {
	return r.repo.Create(ctx, bucket)
}

func (r *bucketGorm) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Bucket, error) {
	return r.repo.List(ctx, "user_id = ?", ownerID)
}

func (r *bucketGorm) GetForOwner(ctx context.Context, ownerID, id uint) (*entity.Bucket, error) {
	return r.repo.Get(ctx, id, "user_id = ?", ownerID)
}

func (r *bucketGorm) DeleteForOwner(ctx context.Context, ownerID, id uint) error {
	return r.repo.Delete(ctx, id, "user_id = ?", ownerID)
}
