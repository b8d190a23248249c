package lending

import (
	"time"

	"github.com/tadelakiran/Book-Library-Management/internal/model"
)

// ComputeStats derives the library summary from current state.  It is a
// pure function: empty inputs yield all-zero stats.  The overdue count
// uses the same predicate as Engine.OverdueRecords so the dashboard and
// the overdue listing can never disagree.
func ComputeStats(books []model.Book, categories []model.Category, users []model.User, records []model.BorrowRecord) model.LibraryStats {
	stats := model.LibraryStats{
		TotalCategories: len(categories),
		TotalUsers:      len(users),
	}
	for _, b := range books {
		stats.TotalBooks += b.TotalCopies
		stats.AvailableBooks += b.AvailableCopies
	}
	now := time.Now().UTC()
	for _, rec := range records {
		if rec.Status == model.StatusBorrowed {
			stats.TotalBorrowedBooks++
		}
		if rec.Overdue(now) {
			stats.OverdueBooks++
		}
	}
	return stats
}
