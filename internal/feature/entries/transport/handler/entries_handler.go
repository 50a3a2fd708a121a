// Package handler provides the HTTP handlers for the entries feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	userentity "grocery_backend/internal/feature/auth/domain/entity"
	"grocery_backend/internal/feature/entries/domain/entity"
	"grocery_backend/internal/feature/entries/transport/http/dto"
	"grocery_backend/internal/feature/entries/usecase"
	jwtmw "grocery_backend/internal/platform/jwt"
	"grocery_backend/internal/shared/apperr"
)

// EntriesUsecase defines the entry operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type EntriesUsecase interface {
	Add(ctx context.Context, user *userentity.User, in usecase.AddInput) (*entity.GroceryEntry, error)
	ListNotPurchased(ctx context.Context) ([]entity.EntryReport, error)
}

// EntriesHandler handles HTTP requests for grocery entries.
type EntriesHandler struct {
	uc EntriesUsecase
}

// NewEntriesHandler creates a new EntriesHandler.
func NewEntriesHandler(uc EntriesUsecase) *EntriesHandler {
	return &EntriesHandler{uc: uc}
}

// Add handles POST /entries. The authenticated user is recorded on the entry.
func (h *EntriesHandler) Add(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrCouldNotValidate.Error()})
		return
	}
	var req dto.EntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.uc.Add(c.Request.Context(), user, usecase.AddInput{
		ItemName:      req.ItemName,
		CategoryID:    req.CategoryID,
		SupermarketID: req.SupermarketID,
		Quantity:      req.Quantity,
		Description:   req.Description,
	})
	if err != nil {
		slog.Error("entry add failed", "error", err, "user", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, dto.EntryItem{
		ID:            entry.ID,
		ItemID:        entry.ItemID,
		CategoryID:    entry.CategoryID,
		SupermarketID: entry.SupermarketID,
		Quantity:      entry.Quantity,
		Description:   entry.Description,
		Purchased:     entry.Purchased,
	})
}

// ListNotPurchased handles GET /entries, the not-yet-purchased report.
func (h *EntriesHandler) ListNotPurchased(c *gin.Context) {
	reports, err := h.uc.ListNotPurchased(c.Request.Context())
	if err != nil {
		slog.Error("entries report failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	out := make([]dto.ReportItem, 0, len(reports))
	for _, r := range reports {
		out = append(out, dto.ReportItem{
			ItemName:     r.ItemName,
			CategoryName: r.CategoryName,
			Quantity:     r.Quantity,
			Description:  r.Description,
			Purchased:    r.Purchased,
		})
	}
	c.JSON(http.StatusOK, out)
}
