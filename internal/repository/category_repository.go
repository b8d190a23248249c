package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tadelakiran/Book-Library-Management/internal/model"
	"github.com/tadelakiran/Book-Library-Management/internal/store"
)

// CategoryRepo provides CRUD operations on the categories collection.
// Delete is guarded: a category that is still referenced by books cannot
// be removed, which keeps the catalog's reference chain intact even
// though book.CategoryID is otherwise unenforced.
type CategoryRepo struct {
	s     store.Store
	books *BookRepo
}

// NewCategoryRepo returns a CategoryRepo bound to the given store.  The
// BookRepo is consulted on delete to refuse removal of categories in use.
func NewCategoryRepo(s store.Store, books *BookRepo) *CategoryRepo {
	return &CategoryRepo{s: s, books: books}
}

// All returns every category in insertion order.
func (r *CategoryRepo) All(ctx context.Context) ([]model.Category, error) {
	return readAll[model.Category](ctx, r.s, store.KeyCategories)
}

// ReplaceAll overwrites the whole categories collection (seeder only).
func (r *CategoryRepo) ReplaceAll(ctx context.Context, categories []model.Category) error {
	return writeAll(ctx, r.s, store.KeyCategories, categories)
}

// GetByID returns a single category or ErrCategoryNotFound.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (model.Category, error) {
	categories, err := r.All(ctx)
	if err != nil {
		return model.Category{}, err
	}
	for _, c := range categories {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Category{}, ErrCategoryNotFound
}

// Create stamps identity and CreatedAt and appends the category.
func (r *CategoryRepo) Create(ctx context.Context, c model.Category) (model.Category, error) {
	categories, err := r.All(ctx)
	if err != nil {
		return model.Category{}, err
	}
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	categories = append(categories, c)
	if err := r.ReplaceAll(ctx, categories); err != nil {
		return model.Category{}, err
	}
	return c, nil
}

// Update replaces the name and description of an existing category.
func (r *CategoryRepo) Update(ctx context.Context, id string, c model.Category) (model.Category, error) {
	categories, err := r.All(ctx)
	if err != nil {
		return model.Category{}, err
	}
	for i := range categories {
		if categories[i].ID != id {
			continue
		}
		categories[i].Name = c.Name
		categories[i].Description = c.Description
		if err := r.ReplaceAll(ctx, categories); err != nil {
			return model.Category{}, err
		}
		return categories[i], nil
	}
	return model.Category{}, ErrCategoryNotFound
}

// Delete removes a category.  It returns ErrCategoryInUse when any book
// still references the category and ErrCategoryNotFound for unknown IDs.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	n, err := r.books.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrCategoryInUse
	}
	categories, err := r.All(ctx)
	if err != nil {
		return err
	}
	kept := categories[:0]
	found := false
	for _, c := range categories {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrCategoryNotFound
	}
	return r.ReplaceAll(ctx, kept)
}
