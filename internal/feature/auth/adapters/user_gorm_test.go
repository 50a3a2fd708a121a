package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"grocery_backend/internal/feature/auth/domain/entity"
	"grocery_backend/internal/feature/auth/usecase"
	"grocery_backend/internal/shared/apperr"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	require.NoError(t, db.AutoMigrate(&entity.User{}), "failed to migrate table")

	return db
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		user := &entity.User{
			Name:     "alice",
			LastName: "smith",
			Email:    "test@example.com",
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		require.NoError(t, err)
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		first := &entity.User{Name: "a", LastName: "b", Email: "duplicate@example.com", Password: "h1"}
		require.NoError(t, repo.Create(context.Background(), first))

		second := &entity.User{Name: "c", LastName: "d", Email: "duplicate@example.com", Password: "h2"}
		err := repo.Create(context.Background(), second)

		require.Error(t, err)
		assert.True(t, apperr.IsDuplicate(err))
		assert.Contains(t, err.Error(), "duplicate@example.com")
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		created := &entity.User{Name: "alice", LastName: "smith", Email: "find@example.com", Password: "h"}
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "alice", found.Name)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.True(t, errors.Is(err, usecase.ErrUserNotFound))
	})
}
