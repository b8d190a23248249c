package lending

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tadelakiran/Book-Library-Management/internal/model"
)

func TestComputeStats(t *testing.T) {
	t.Run("empty state is all zeros", func(t *testing.T) {
		got := ComputeStats(nil, nil, nil, nil)
		assert.Equal(t, model.LibraryStats{}, got)
	})

	t.Run("copy counts, not title counts", func(t *testing.T) {
		books := []model.Book{
			{ID: "b1", TotalCopies: 5, AvailableCopies: 3},
			{ID: "b2", TotalCopies: 3, AvailableCopies: 3},
		}
		got := ComputeStats(books, nil, nil, nil)
		assert.Equal(t, 8, got.TotalBooks)
		assert.Equal(t, 6, got.AvailableBooks)
	})

	t.Run("borrowed and overdue derivation", func(t *testing.T) {
		now := time.Now().UTC()
		pastReturn := now.Add(-24 * time.Hour)
		records := []model.BorrowRecord{
			{ID: "r1", Status: model.StatusBorrowed, DueDate: now.Add(7 * 24 * time.Hour)},
			{ID: "r2", Status: model.StatusBorrowed, DueDate: now.Add(-3 * 24 * time.Hour)},
			// Returned while past due: counts for neither figure.
			{ID: "r3", Status: model.StatusReturned, DueDate: now.Add(-5 * 24 * time.Hour), ReturnDate: &pastReturn},
		}
		categories := []model.Category{{ID: "c1"}, {ID: "c2"}}
		users := []model.User{{ID: "u1"}}

		got := ComputeStats(nil, categories, users, records)
		assert.Equal(t, 2, got.TotalCategories)
		assert.Equal(t, 1, got.TotalUsers)
		assert.Equal(t, 2, got.TotalBorrowedBooks)
		assert.Equal(t, 1, got.OverdueBooks)
	})
}
