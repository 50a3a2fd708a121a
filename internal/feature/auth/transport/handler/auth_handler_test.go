package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grocery_backend/internal/feature/auth/domain/entity"
	"grocery_backend/internal/shared/apperr"
	"grocery_backend/internal/shared/ratelimiter"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, name, lastName, email, password string) (*entity.User, error)
	LoginFunc  func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, name, lastName, email, password string) (*entity.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, name, lastName, email, password)
	}
	return &entity.User{ID: 1, Name: name, LastName: lastName, Email: email}, nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", apperr.ErrInvalidCredentials // Default: failure
}

func postJSON(t *testing.T, r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignupFunc func(ctx context.Context, name, lastName, email, password string) (*entity.User, error)
		expectedStatus int
		checkBody      func(t *testing.T, body gin.H)
	}{
		{
			name:        "success: user registration",
			requestBody: gin.H{"name": "alice", "lastName": "smith", "email": "a@x.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, lastName, email, password string) (*entity.User, error) {
				return &entity.User{ID: 1, Name: name, LastName: lastName, Email: email}, nil
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body gin.H) {
				assert.Equal(t, "alice", body["name"])
				assert.Equal(t, "a@x.com", body["email"])
				assert.NotContains(t, body, "password", "password must never be returned")
			},
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"name": "alice", "lastName": "smith", "email": "not-an-email", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"name": "alice", "lastName": "smith", "email": "a@x.com", "password": "short"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"name": "alice", "lastName": "smith", "email": "a@x.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, lastName, email, password string) (*entity.User, error) {
				return nil, &apperr.DuplicateError{Resource: "user", Name: email}
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body gin.H) {
				assert.Equal(t, "There is already a user with the name : a@x.com", body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{SignupFunc: tt.mockSignupFunc}, nil)

			r := gin.New()
			r.POST("/users", h.Register)

			w := postJSON(t, r, "/users", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkBody != nil {
				var body gin.H
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				tt.checkBody(t, body)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: token response shape", func(t *testing.T) {
		uc := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "signed-token", nil
			},
		}
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.POST("/login", h.Login)

		w := postJSON(t, r, "/login", gin.H{"email": "a@x.com", "password": "pw123456"})

		assert.Equal(t, http.StatusOK, w.Code)
		var body gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "signed-token", body["access_token"])
		assert.Equal(t, "bearer", body["token_type"])
	})

	t.Run("failure: incorrect credentials", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{}, nil)

		r := gin.New()
		r.POST("/login", h.Login)

		w := postJSON(t, r, "/login", gin.H{"email": "a@x.com", "password": "wrong-pass"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Incorrect user name or password!")
	})

	t.Run("failure: rate limited", func(t *testing.T) {
		uc := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "signed-token", nil
			},
		}
		// One attempt per hour: the second request must be rejected.
		h := NewAuthHandler(uc, ratelimiter.NewRateLimiter(1, time.Hour))

		r := gin.New()
		r.POST("/login", h.Login)

		first := postJSON(t, r, "/login", gin.H{"email": "a@x.com", "password": "pw123456"})
		second := postJSON(t, r, "/login", gin.H{"email": "a@x.com", "password": "pw123456"})

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
	})
}
