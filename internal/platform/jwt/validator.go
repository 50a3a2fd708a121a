package jwtmw

import (
	"github.com/golang-jwt/jwt/v5"

	"grocery_backend/internal/shared/apperr"
)

// Validator checks presented access tokens and extracts the subject email.
type Validator struct {
	secret []byte
}

// NewValidator creates a Validator using the provided signing secret.
func NewValidator(secret string) *Validator {
	return &Validator{secret: []byte(secret)}
}

// ValidateToken parses and verifies the token and returns the email claim.
// A bad signature, malformed payload, missing email claim or expired token
// all fail with apperr.ErrInvalidToken. Expiry is a hard boundary with no
// clock-skew tolerance.
func (v *Validator) ValidateToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable; anything else is a forged header.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperr.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperr.ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", apperr.ErrInvalidToken
	}

	return email, nil
}
