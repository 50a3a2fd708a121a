package usecase

import (
	"context"
	"fmt"

	"grocery_backend/internal/feature/auth/domain/entity"
	"grocery_backend/internal/platform/password"
	"grocery_backend/internal/shared/apperr"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It fails with apperr.DuplicateError when a
	// user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user with the given email address, failing
	// with ErrUserNotFound when none exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// TokenIssuer mints signed access tokens.
type TokenIssuer interface {
	GenerateToken(email string) (string, error)
}

// TokenValidator checks presented tokens and returns the subject email.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// AuthUsecase implements registration, login and token-based identity
// resolution.
type AuthUsecase struct {
	users     UserRepository
	issuer    TokenIssuer
	validator TokenValidator
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, issuer TokenIssuer, validator TokenValidator) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		issuer:    issuer,
		validator: validator,
	}
}

// Signup registers a new user with a hashed password. The plaintext is
// discarded as soon as the hash exists and is never logged.
func (u *AuthUsecase) Signup(ctx context.Context, name, lastName, email, plaintext string) (*entity.User, error) {
	hashed, err := password.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	user := &entity.User{
		Name:     name,
		LastName: lastName,
		Email:    email,
		Password: hashed,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a signed access token.
// Unknown email and wrong password yield the identical
// apperr.ErrInvalidCredentials; the bcrypt comparison runs in both cases so
// response timing does not reveal whether the account exists.
func (u *AuthUsecase) Login(ctx context.Context, email, plaintext string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	hash := password.DummyHash
	if err == nil {
		hash = user.Password
	}
	ok := password.Verify(hash, plaintext)

	if err != nil || !ok {
		return "", apperr.ErrInvalidCredentials
	}

	token, err := u.issuer.GenerateToken(user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ResolveToken maps a presented token to the user it identifies.
// A bad token, a missing email claim and a user that no longer exists all
// collapse into apperr.ErrCouldNotValidate; callers cannot tell them apart.
func (u *AuthUsecase) ResolveToken(ctx context.Context, token string) (*entity.User, error) {
	email, err := u.validator.ValidateToken(token)
	if err != nil {
		return nil, apperr.ErrCouldNotValidate
	}
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.ErrCouldNotValidate
	}
	return user, nil
}
