package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grocery_backend/internal/feature/category/domain/entity"
	"grocery_backend/internal/shared/apperr"
)

// mockCategoryUsecase is a mock implementation of the CategoryUsecase interface.
type mockCategoryUsecase struct {
	CreateFunc func(ctx context.Context, name, description string) (*entity.Category, error)
	ListFunc   func(ctx context.Context) ([]entity.Category, error)
	GetFunc    func(ctx context.Context, id uint) (*entity.Category, error)
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *mockCategoryUsecase) Create(ctx context.Context, name, description string) (*entity.Category, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, name, description)
	}
	return &entity.Category{ID: 1, Name: name, Description: description}, nil
}

func (m *mockCategoryUsecase) List(ctx context.Context) ([]entity.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []entity.Category{}, nil
}

func (m *mockCategoryUsecase) Get(ctx context.Context, id uint) (*entity.Category, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, &apperr.NotFoundError{Resource: "category", ID: id}
}

func (m *mockCategoryUsecase) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return &apperr.NotFoundError{Resource: "category", ID: id}
}

func newRouter(uc CategoryUsecase) *gin.Engine {
	h := NewCategoryHandler(uc)
	r := gin.New()
	r.POST("/categories", h.Create)
	r.GET("/categories", h.List)
	r.GET("/categories/:id", h.Get)
	r.DELETE("/categories/:id", h.Delete)
	return r
}

func TestCategoryHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns 201 with the stored category", func(t *testing.T) {
		r := newRouter(&mockCategoryUsecase{})

		body, _ := json.Marshal(gin.H{"name": "Fruits", "description": "Fruits"})
		req, _ := http.NewRequest(http.MethodPost, "/categories", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, float64(1), got["id"])
		assert.Equal(t, "Fruits", got["name"])
	})

	t.Run("duplicate name returns 400 with the exact message", func(t *testing.T) {
		uc := &mockCategoryUsecase{
			CreateFunc: func(ctx context.Context, name, description string) (*entity.Category, error) {
				return nil, &apperr.DuplicateError{Resource: "category", Name: name}
			},
		}
		r := newRouter(uc)

		body, _ := json.Marshal(gin.H{"name": "Fruits", "description": "Fruits"})
		req, _ := http.NewRequest(http.MethodPost, "/categories", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var got gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "There is already a category with the name : Fruits", got["error"])
	})

	t.Run("missing name returns 400", func(t *testing.T) {
		r := newRouter(&mockCategoryUsecase{})

		body, _ := json.Marshal(gin.H{"description": "no name"})
		req, _ := http.NewRequest(http.MethodPost, "/categories", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCategoryHandler_GetDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get absent id returns 404 with the exact message", func(t *testing.T) {
		r := newRouter(&mockCategoryUsecase{})

		req, _ := http.NewRequest(http.MethodGet, "/categories/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var got gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "No category found with the id 5", got["error"])
	})

	t.Run("get with non-numeric id returns 400", func(t *testing.T) {
		r := newRouter(&mockCategoryUsecase{})

		req, _ := http.NewRequest(http.MethodGet, "/categories/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete success returns 204", func(t *testing.T) {
		uc := &mockCategoryUsecase{
			DeleteFunc: func(ctx context.Context, id uint) error { return nil },
		}
		r := newRouter(uc)

		req, _ := http.NewRequest(http.MethodDelete, "/categories/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestCategoryHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc := &mockCategoryUsecase{
		ListFunc: func(ctx context.Context) ([]entity.Category, error) {
			return []entity.Category{
				{ID: 1, Name: "Fruits"},
				{ID: 2, Name: "Dairy", Description: "Milk and cheese"},
			}, nil
		},
	}
	r := newRouter(uc)

	req, _ := http.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []gin.H
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Fruits", got[0]["name"])
	assert.Equal(t, "Milk and cheese", got[1]["description"])
}
