package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL is the lifetime of a login token. It is deliberately short
// so that clients re-authenticate frequently.
const AccessTokenTTL = 2 * time.Minute

// EnvKeyJWTSecret is the environment variable holding the signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

// Generator mints signed access tokens for authenticated users.
type Generator struct {
	secret []byte
	ttl    time.Duration
}

// NewGenerator creates a Generator with the provided signing secret and token
// lifetime.
func NewGenerator(secret string, ttl time.Duration) *Generator {
	return &Generator{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken creates a signed HS256 token whose subject is the user's
// email address.
func (g *Generator) GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"exp":   now.Add(g.ttl).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
