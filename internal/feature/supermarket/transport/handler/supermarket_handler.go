// Package handler provides the HTTP handlers for the supermarket feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"grocery_backend/internal/feature/supermarket/domain/entity"
	"grocery_backend/internal/feature/supermarket/transport/http/dto"
	"grocery_backend/internal/shared/apperr"
)

// SuperMarketUsecase defines the supermarket operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type SuperMarketUsecase interface {
	Create(ctx context.Context, name string) (*entity.SuperMarket, error)
	List(ctx context.Context) ([]entity.SuperMarket, error)
	Get(ctx context.Context, id uint) (*entity.SuperMarket, error)
	Delete(ctx context.Context, id uint) error
}

// SuperMarketHandler handles HTTP requests for supermarket operations.
type SuperMarketHandler struct {
	uc SuperMarketUsecase
}

// NewSuperMarketHandler creates a new SuperMarketHandler.
func NewSuperMarketHandler(uc SuperMarketUsecase) *SuperMarketHandler {
	return &SuperMarketHandler{uc: uc}
}

// Create handles POST /supermarkets.
// Returns 201 with the stored supermarket, or 400 when the name already exists.
func (h *SuperMarketHandler) Create(c *gin.Context) {
	var req dto.SuperMarketReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	supermarket, err := h.uc.Create(c.Request.Context(), req.Name)
	if err != nil {
		if apperr.IsDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("supermarket create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, dto.SuperMarketItem{ID: supermarket.ID, Name: supermarket.Name})
}

// List handles GET /supermarkets.
func (h *SuperMarketHandler) List(c *gin.Context) {
	supermarkets, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("supermarket list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	out := make([]dto.SuperMarketItem, 0, len(supermarkets))
	for _, s := range supermarkets {
		out = append(out, dto.SuperMarketItem{ID: s.ID, Name: s.Name})
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /supermarkets/:id.
// Returns 404 when no supermarket has that id.
func (h *SuperMarketHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	supermarket, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		if apperr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error("supermarket get failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.SuperMarketItem{ID: supermarket.ID, Name: supermarket.Name})
}

// Delete handles DELETE /supermarkets/:id.
func (h *SuperMarketHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if apperr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error("supermarket delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
