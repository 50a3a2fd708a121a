// Package handler provides the HTTP handlers for the category feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"grocery_backend/internal/feature/category/domain/entity"
	"grocery_backend/internal/feature/category/transport/http/dto"
	"grocery_backend/internal/shared/apperr"
)

// CategoryUsecase defines the category operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type CategoryUsecase interface {
	Create(ctx context.Context, name, description string) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Get(ctx context.Context, id uint) (*entity.Category, error)
	Delete(ctx context.Context, id uint) error
}

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	uc CategoryUsecase
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(uc CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create handles POST /categories.
// Returns 201 with the stored category, or 400 when the name already exists.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := h.uc.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		if apperr.IsDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("category create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, toItem(category))
}

// List handles GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("category list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	out := make([]dto.CategoryItem, 0, len(categories))
	for i := range categories {
		out = append(out, toItem(&categories[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /categories/:id.
// Returns 404 when no category has that id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	category, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		if apperr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error("category get failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toItem(category))
}

// Delete handles DELETE /categories/:id.
// Deleting an absent id fails with 404; a second delete of the same id does
// too.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if apperr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error("category delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func toItem(category *entity.Category) dto.CategoryItem {
	return dto.CategoryItem{ID: category.ID, Name: category.Name, Description: category.Description}
}

// parseID reads the :id path parameter, answering 400 on garbage input.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
