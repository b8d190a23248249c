package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tadelakiran/Book-Library-Management/internal/model"
	"github.com/tadelakiran/Book-Library-Management/internal/store"
)

// BookRepo provides CRUD operations on the books collection.  CreatedAt
// is stamped once on creation and UpdatedAt on every mutation.  The
// AvailableCopies field is owned by the lending engine; catalog updates
// leave it untouched.
type BookRepo struct {
	s store.Store
}

// NewBookRepo returns a BookRepo bound to the given store.
func NewBookRepo(s store.Store) *BookRepo { return &BookRepo{s: s} }

// All returns every book in insertion order.
func (r *BookRepo) All(ctx context.Context) ([]model.Book, error) {
	return readAll[model.Book](ctx, r.s, store.KeyBooks)
}

// ReplaceAll overwrites the whole books collection.  Reserved for the
// lending engine and the seeder; catalog callers use the typed mutations
// below.
func (r *BookRepo) ReplaceAll(ctx context.Context, books []model.Book) error {
	return writeAll(ctx, r.s, store.KeyBooks, books)
}

// GetByID returns a single book or ErrBookNotFound.
func (r *BookRepo) GetByID(ctx context.Context, id string) (model.Book, error) {
	books, err := r.All(ctx)
	if err != nil {
		return model.Book{}, err
	}
	for _, b := range books {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Book{}, ErrBookNotFound
}

// Create stamps identity and timestamps on the book and appends it to the
// collection.  New books start with all copies available unless the
// caller set AvailableCopies explicitly.
func (r *BookRepo) Create(ctx context.Context, b model.Book) (model.Book, error) {
	books, err := r.All(ctx)
	if err != nil {
		return model.Book{}, err
	}
	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.AvailableCopies == 0 {
		b.AvailableCopies = b.TotalCopies
	}
	books = append(books, b)
	if err := r.ReplaceAll(ctx, books); err != nil {
		return model.Book{}, err
	}
	return b, nil
}

// Update replaces the catalog fields of an existing book and stamps
// UpdatedAt.  AvailableCopies and CreatedAt are preserved from the stored
// record.  Returns ErrBookNotFound when the ID is unknown.
func (r *BookRepo) Update(ctx context.Context, id string, b model.Book) (model.Book, error) {
	books, err := r.All(ctx)
	if err != nil {
		return model.Book{}, err
	}
	for i := range books {
		if books[i].ID != id {
			continue
		}
		b.ID = id
		b.AvailableCopies = books[i].AvailableCopies
		b.CreatedAt = books[i].CreatedAt
		b.UpdatedAt = time.Now().UTC()
		books[i] = b
		if err := r.ReplaceAll(ctx, books); err != nil {
			return model.Book{}, err
		}
		return b, nil
	}
	return model.Book{}, ErrBookNotFound
}

// Delete removes a book unconditionally.  Deleting a book with open loans
// is allowed; the lending engine tolerates records that point at a book
// that no longer exists.
func (r *BookRepo) Delete(ctx context.Context, id string) error {
	books, err := r.All(ctx)
	if err != nil {
		return err
	}
	kept := books[:0]
	found := false
	for _, b := range books {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return ErrBookNotFound
	}
	return r.ReplaceAll(ctx, kept)
}

// CountByCategory returns how many books reference the given category.
func (r *BookRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	books, err := r.All(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, b := range books {
		if b.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}
