package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tadelakiran/Book-Library-Management/internal/model"
	"github.com/tadelakiran/Book-Library-Management/internal/store"
	"github.com/tadelakiran/Book-Library-Management/internal/utils"
)

func newUserRepo(t *testing.T) *UserRepo {
	t.Helper()
	return NewUserRepo(store.NewMemory())
}

func TestUserCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes email and hashes password", func(t *testing.T) {
		r := newUserRepo(t)
		u, err := r.Create(ctx, "  Jane@Email.com ", "secret", "Jane Smith", model.RoleUser, bcrypt.MinCost)
		require.NoError(t, err)
		assert.Equal(t, "jane@email.com", u.Email)
		assert.NotEqual(t, "secret", u.PasswordHash)
		assert.True(t, utils.VerifyPassword(u.PasswordHash, "secret"))
		assert.NotEmpty(t, u.ID)
		assert.False(t, u.CreatedAt.IsZero())
	})

	t.Run("duplicate email collides case-insensitively", func(t *testing.T) {
		r := newUserRepo(t)
		_, err := r.Create(ctx, "admin@library.com", "secret", "Admin", model.RoleAdmin, bcrypt.MinCost)
		require.NoError(t, err)

		_, err = r.Create(ctx, "Admin@Library.com", "other", "Impostor", model.RoleUser, bcrypt.MinCost)
		assert.ErrorIs(t, err, ErrEmailExists)

		users, err := r.All(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestUserGetByEmail(t *testing.T) {
	ctx := context.Background()
	r := newUserRepo(t)
	created, err := r.Create(ctx, "john@email.com", "secret", "John Doe", model.RoleUser, bcrypt.MinCost)
	require.NoError(t, err)

	got, err := r.GetByEmail(ctx, "JOHN@EMAIL.COM")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = r.GetByEmail(ctx, "nobody@email.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserDelete(t *testing.T) {
	ctx := context.Background()
	r := newUserRepo(t)
	u, err := r.Create(ctx, "john@email.com", "secret", "John Doe", model.RoleUser, bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, u.ID))
	assert.ErrorIs(t, r.Delete(ctx, u.ID), ErrUserNotFound)
}

func TestRefreshTokens(t *testing.T) {
	ctx := context.Background()
	r := newUserRepo(t)
	exp := time.Now().UTC().Add(24 * time.Hour)

	require.NoError(t, r.StoreRefresh(ctx, "user-1", "hash-1", exp))

	uid, err := r.ValidateRefresh(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)

	require.NoError(t, r.RevokeByHash(ctx, "hash-1"))
	_, err = r.ValidateRefresh(ctx, "hash-1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Expired tokens never validate.
	require.NoError(t, r.StoreRefresh(ctx, "user-2", "hash-2", time.Now().UTC().Add(-time.Minute)))
	_, err = r.ValidateRefresh(ctx, "hash-2")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// RevokeAllForUser kills every active session of one user only.
	require.NoError(t, r.StoreRefresh(ctx, "user-3", "hash-3a", exp))
	require.NoError(t, r.StoreRefresh(ctx, "user-3", "hash-3b", exp))
	require.NoError(t, r.StoreRefresh(ctx, "user-4", "hash-4", exp))
	require.NoError(t, r.RevokeAllForUser(ctx, "user-3"))

	_, err = r.ValidateRefresh(ctx, "hash-3a")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = r.ValidateRefresh(ctx, "hash-3b")
	assert.ErrorIs(t, err, ErrUserNotFound)
	uid, err = r.ValidateRefresh(ctx, "hash-4")
	require.NoError(t, err)
	assert.Equal(t, "user-4", uid)
}
