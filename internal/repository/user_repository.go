package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tadelakiran/Book-Library-Management/internal/model"
	"github.com/tadelakiran/Book-Library-Management/internal/store"
	"github.com/tadelakiran/Book-Library-Management/internal/utils"
)

// UserRepo provides membership operations on the users collection and
// session persistence on the refreshTokens collection.  Emails are
// normalized to lower case on every path so the uniqueness check and the
// login lookup agree on what "the same email" means.
type UserRepo struct {
	s store.Store
}

// NewUserRepo returns a UserRepo bound to the given store.
func NewUserRepo(s store.Store) *UserRepo { return &UserRepo{s: s} }

// All returns every user in insertion order.
func (r *UserRepo) All(ctx context.Context) ([]model.User, error) {
	return readAll[model.User](ctx, r.s, store.KeyUsers)
}

// ReplaceAll overwrites the whole users collection (seeder only).
func (r *UserRepo) ReplaceAll(ctx context.Context, users []model.User) error {
	return writeAll(ctx, r.s, store.KeyUsers, users)
}

// GetByID returns a single user or ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

// GetByEmail fetches a user by normalized email or returns ErrUserNotFound.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	users, err := r.All(ctx)
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if strings.ToLower(u.Email) == email {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

// Create registers a new user.  The email is normalized and checked
// case-insensitively against the existing collection; a collision yields
// ErrEmailExists and no mutation.  The password is bcrypt-hashed with the
// given cost before it is persisted.
func (r *UserRepo) Create(ctx context.Context, email, password, name, role string, cost int) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	users, err := r.All(ctx)
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if strings.ToLower(u.Email) == email {
			return model.User{}, ErrEmailExists
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.User{}, err
	}
	u := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	users = append(users, u)
	if err := r.ReplaceAll(ctx, users); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Delete removes a user by ID.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	users, err := r.All(ctx)
	if err != nil {
		return err
	}
	kept := users[:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return ErrUserNotFound
	}
	return r.ReplaceAll(ctx, kept)
}

// ----- refresh tokens -----

func (r *UserRepo) refreshTokens(ctx context.Context) ([]model.RefreshToken, error) {
	return readAll[model.RefreshToken](ctx, r.s, store.KeyRefreshTokens)
}

// StoreRefresh persists the hash of a refresh token for a user.
func (r *UserRepo) StoreRefresh(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	tokens, err := r.refreshTokens(ctx)
	if err != nil {
		return err
	}
	tokens = append(tokens, model.RefreshToken{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	})
	return writeAll(ctx, r.s, store.KeyRefreshTokens, tokens)
}

// ValidateRefresh returns the owning user ID for an active, unexpired
// token hash, or ErrUserNotFound when no such token exists.
func (r *UserRepo) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	tokens, err := r.refreshTokens(ctx)
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	for _, t := range tokens {
		if t.TokenHash == tokenHash && t.RevokedAt == nil && t.ExpiresAt.After(now) {
			return t.UserID, nil
		}
	}
	return "", ErrUserNotFound
}

// RevokeByHash marks a single refresh token as revoked.  Revoking an
// unknown hash is a no-op.
func (r *UserRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	tokens, err := r.refreshTokens(ctx)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for i := range tokens {
		if tokens[i].TokenHash == tokenHash && tokens[i].RevokedAt == nil {
			tokens[i].RevokedAt = &now
		}
	}
	return writeAll(ctx, r.s, store.KeyRefreshTokens, tokens)
}

// RevokeAllForUser marks every active refresh token of a user as revoked.
func (r *UserRepo) RevokeAllForUser(ctx context.Context, userID string) error {
	tokens, err := r.refreshTokens(ctx)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for i := range tokens {
		if tokens[i].UserID == userID && tokens[i].RevokedAt == nil {
			tokens[i].RevokedAt = &now
		}
	}
	return writeAll(ctx, r.s, store.KeyRefreshTokens, tokens)
}
