package repository

import (
	"context"

	"github.com/tadelakiran/Book-Library-Management/internal/model"
	"github.com/tadelakiran/Book-Library-Management/internal/store"
)

// BorrowRepo reads and writes the borrowRecords collection.  Records are
// only ever appended or mutated in place, never deleted, so insertion
// order doubles as chronological order.  All lifecycle rules live in the
// lending engine; this type is pure persistence.
type BorrowRepo struct {
	s store.Store
}

// NewBorrowRepo returns a BorrowRepo bound to the given store.
func NewBorrowRepo(s store.Store) *BorrowRepo { return &BorrowRepo{s: s} }

// All returns every borrow record in insertion order.
func (r *BorrowRepo) All(ctx context.Context) ([]model.BorrowRecord, error) {
	return readAll[model.BorrowRecord](ctx, r.s, store.KeyBorrowRecords)
}

// ReplaceAll overwrites the whole borrowRecords collection.
func (r *BorrowRepo) ReplaceAll(ctx context.Context, records []model.BorrowRecord) error {
	return writeAll(ctx, r.s, store.KeyBorrowRecords, records)
}

// GetByID returns a single record or ErrRecordNotFound.
func (r *BorrowRepo) GetByID(ctx context.Context, id string) (model.BorrowRecord, error) {
	records, err := r.All(ctx)
	if err != nil {
		return model.BorrowRecord{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return model.BorrowRecord{}, ErrRecordNotFound
}
