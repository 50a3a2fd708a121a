// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"grocery_backend/internal/feature/category/domain/entity"
	"grocery_backend/internal/feature/category/usecase"
)

// CachingCategoryRepository decorates a CategoryRepository with Redis caching
// of the full category listing. It implements the decorator pattern,
// transparently adding caching without modifying the underlying repository.
type CachingCategoryRepository struct {
	inner     usecase.CategoryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.CategoryRepository = (*CachingCategoryRepository)(nil)

// NewCachingCategoryRepository decorates a CategoryRepository with Redis
// caching. If ttl is 0 it defaults to 5 minutes; an empty namespace defaults
// to "categories".
func NewCachingCategoryRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CategoryRepository, namespace string) *CachingCategoryRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "categories"
	}
	return &CachingCategoryRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts through to the underlying repository and invalidates the
// cached listing.
func (c *CachingCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if err := c.inner.Create(ctx, category); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// List returns the categories, checking the cache first and falling back to
// the database.
func (c *CachingCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Category
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	// Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Get bypasses the cache; single-row reads go straight to the database.
func (c *CachingCategoryRepository) Get(ctx context.Context, id uint) (*entity.Category, error) {
	return c.inner.Get(ctx, id)
}

// Delete removes through to the underlying repository and invalidates the
// cached listing.
func (c *CachingCategoryRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachingCategoryRepository) listKey() string {
	return c.namespace + ":all"
}

// invalidate drops the cached listing. Best effort: a failed delete only
// means a stale read until the TTL expires.
func (c *CachingCategoryRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey()).Err()
}
