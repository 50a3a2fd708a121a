// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"grocery_backend/internal/feature/auth/domain/entity"
	"grocery_backend/internal/feature/auth/transport/http/dto"
	"grocery_backend/internal/shared/apperr"
	"grocery_backend/internal/shared/ratelimiter"
)

// AuthUsecase defines the authentication operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user with the given profile and password.
	Signup(ctx context.Context, name, lastName, email, password string) (*entity.User, error)
	// Login authenticates a user and returns an access token on success.
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	auth    AuthUsecase
	limiter ratelimiter.RateLimiterInterface
}

// NewAuthHandler creates a new AuthHandler. limiter throttles login attempts
// and may be nil to disable throttling.
func NewAuthHandler(auth AuthUsecase, limiter ratelimiter.RateLimiterInterface) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

// Register handles POST /users.
// - binds the request JSON to SignupReq, 400 on validation failure
// - 400 with the duplicate message when the email is already registered
// - 201 with the stored user (without password) on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.auth.Signup(c.Request.Context(), req.Name, req.LastName, req.Email, req.Password)
	if err != nil {
		if apperr.IsDuplicate(err) {
			slog.Warn("signup rejected", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	slog.Info("user signup successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.UserItem{
		ID:       user.ID,
		Name:     user.Name,
		LastName: user.LastName,
		Email:    user.Email,
	})
}

// Login handles POST /login.
// - 429 when the login rate limit is exhausted
// - 401 with a generic message on unknown email or wrong password
// - 200 with {access_token, token_type: "bearer"} on success
func (h *AuthHandler) Login(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow() {
		slog.Warn("login rate limited", "remote_addr", c.ClientIP())
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
		return
	}
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Same response for unknown email and wrong password.
		slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrInvalidCredentials.Error()})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
