package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"grocery_backend/internal/feature/auth/domain/entity"
	"grocery_backend/internal/shared/apperr"
)

// ContextUserKey is the gin context key under which the resolved user is stored.
const ContextUserKey = "currentUser"

// UserResolver maps a presented token to the user it identifies.
// Following Go convention: interfaces are defined by the consumer (middleware),
// not the provider (usecase).
type UserResolver interface {
	ResolveToken(ctx context.Context, token string) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that resolves the bearer token into a
// user and stores it in the request context. Every failure mode (missing
// header, bad token, unknown user) aborts with the same 401 response.
func AuthRequired(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrCouldNotValidate.Error()})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		user, err := resolver.ResolveToken(c.Request.Context(), tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrCouldNotValidate.Error()})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser extracts the resolved user stored by AuthRequired.
// The second return value is false when the middleware did not run.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
