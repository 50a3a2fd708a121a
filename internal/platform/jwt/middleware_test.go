package jwtmw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grocery_backend/internal/feature/auth/domain/entity"
	"grocery_backend/internal/shared/apperr"
)

// mockResolver is a mock implementation of the UserResolver interface.
type mockResolver struct {
	ResolveTokenFunc func(ctx context.Context, token string) (*entity.User, error)
}

func (m *mockResolver) ResolveToken(ctx context.Context, token string) (*entity.User, error) {
	if m.ResolveTokenFunc != nil {
		return m.ResolveTokenFunc(ctx, token)
	}
	return nil, apperr.ErrCouldNotValidate
}

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validUser := &entity.User{ID: 7, Name: "alice", Email: "alice@example.com"}

	tests := []struct {
		name           string
		authHeader     string
		resolveFunc    func(ctx context.Context, token string) (*entity.User, error)
		expectedStatus int
	}{
		{
			name:       "success: valid bearer token",
			authHeader: "Bearer good-token",
			resolveFunc: func(ctx context.Context, token string) (*entity.User, error) {
				assert.Equal(t, "good-token", token)
				return validUser, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "failure: not a bearer scheme",
			authHeader:     "Basic abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "failure: resolver rejects token",
			authHeader: "Bearer bad-token",
			resolveFunc: func(ctx context.Context, token string) (*entity.User, error) {
				return nil, apperr.ErrCouldNotValidate
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &mockResolver{ResolveTokenFunc: tt.resolveFunc}

			r := gin.New()
			r.GET("/protected", AuthRequired(resolver), func(c *gin.Context) {
				user, ok := CurrentUser(c)
				require.True(t, ok, "user missing from context")
				assert.Equal(t, validUser.ID, user.ID)
				c.JSON(http.StatusOK, gin.H{"email": user.Email})
			})

			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), "Could not validate credentials")
			}
		})
	}
}

func TestCurrentUser_NotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	user, ok := CurrentUser(c)

	assert.False(t, ok)
	assert.Nil(t, user)
}
