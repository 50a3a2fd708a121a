// Package handler provides the HTTP handlers for the bucket feature.
// All routes sit behind the auth middleware; the resolved user is taken from
// the request context.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	userentity "grocery_backend/internal/feature/auth/domain/entity"
	"grocery_backend/internal/feature/bucket/domain/entity"
	"grocery_backend/internal/feature/bucket/transport/http/dto"
	jwtmw "grocery_backend/internal/platform/jwt"
	"grocery_backend/internal/shared/apperr"
)

// BucketUsecase defines the bucket operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type BucketUsecase interface {
	Create(ctx context.Context, owner *userentity.User, name string) (*entity.Bucket, error)
	List(ctx context.Context, owner *userentity.User) ([]entity.Bucket, error)
	Get(ctx context.Context, owner *userentity.User, id uint) (*entity.Bucket, error)
	Delete(ctx context.Context, owner *userentity.User, id uint) error
}

// BucketHandler handles HTTP requests for bucket operations.
type BucketHandler struct {
	uc BucketUsecase
}

// NewBucketHandler creates a new BucketHandler.
func NewBucketHandler(uc BucketUsecase) *BucketHandler {
	return &BucketHandler{uc: uc}
}

// Create handles POST /buckets.
// The authenticated user becomes the owner. Returns 201 with the stored
// bucket, or 400 when the owner already has a bucket with that name.
func (h *BucketHandler) Create(c *gin.Context) {
	owner, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.BucketReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bucket, err := h.uc.Create(c.Request.Context(), owner, req.Name)
	if err != nil {
		if apperr.IsDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("bucket create failed", "error", err, "owner", owner.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, dto.BucketItem{ID: bucket.ID, Name: bucket.Name})
}

// List handles GET /buckets, scoped to the authenticated owner.
func (h *BucketHandler) List(c *gin.Context) {
	owner, ok := requireUser(c)
	if !ok {
		return
	}
	buckets, err := h.uc.List(c.Request.Context(), owner)
	if err != nil {
		slog.Error("bucket list failed", "error", err, "owner", owner.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	out := make([]dto.BucketItem, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.BucketItem{ID: b.ID, Name: b.Name})
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /buckets/:id.
// A bucket owned by someone else is reported as 404, the same as an absent id.
func (h *BucketHandler) Get(c *gin.Context) {
	owner, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	bucket, err := h.uc.Get(c.Request.Context(), owner, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error("bucket get failed", "error", err, "owner", owner.ID, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.BucketItem{ID: bucket.ID, Name: bucket.Name})
}

// Delete handles DELETE /buckets/:id, with the same owner scoping as Get.
func (h *BucketHandler) Delete(c *gin.Context) {
	owner, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), owner, id); err != nil {
		if apperr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error("bucket delete failed", "error", err, "owner", owner.ID, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// requireUser extracts the user stored by the auth middleware. Reaching a
// bucket handler without one means the route was wired without AuthRequired.
func requireUser(c *gin.Context) (*userentity.User, bool) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrCouldNotValidate.Error()})
		return nil, false
	}
	return user, true
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
