// Package adapters provides the repository implementation for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"grocery_backend/internal/feature/auth/domain/entity"
	"grocery_backend/internal/feature/auth/usecase"
	"grocery_backend/internal/shared/apperr"
)

// userGorm is the GORM implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates a user repository on the given connection.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user inside its own transaction. A second registration
// with the same email rolls back and fails with apperr.DuplicateError.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(u).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &apperr.DuplicateError{Resource: "user", Name: u.Email}
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
