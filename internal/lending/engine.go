// Package lending implements the loan lifecycle: borrowing, returning,
// renewing, overdue detection and the derived library statistics.  The
// engine is the only component that mutates more than one collection per
// operation (a book's copy count together with a borrow record), so it
// serializes every read-modify-write cycle behind a mutex.  The store
// itself offers no transactions; within one process the mutex is the
// serializing queue, and across processes the store's last-write-wins
// consistency applies.
package lending

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tadelakiran/Book-Library-Management/internal/model"
	"github.com/tadelakiran/Book-Library-Management/internal/repository"
)

// LoanPeriod is the fixed interval from borrow (or from the prior due
// date, on renewal) to the due date.
const LoanPeriod = 14 * 24 * time.Hour

// MaxRenewals caps how often a single loan may be renewed.
const MaxRenewals = 2

// ErrNoCopiesAvailable is returned by Borrow when the book exists but has
// no available copies.
var ErrNoCopiesAvailable = errors.New("no copies available")

// ErrRenewalLimit is returned by Renew once a record has reached
// MaxRenewals.
var ErrRenewalLimit = errors.New("renewal limit reached")

// Engine owns the creation and mutation of borrow records and the
// AvailableCopies field of books.  All other fields belong to the
// catalog and membership repositories.
type Engine struct {
	mu         sync.Mutex
	books      *repository.BookRepo
	categories *repository.CategoryRepo
	users      *repository.UserRepo
	records    *repository.BorrowRepo
}

// NewEngine constructs an Engine over the four repositories.  The
// category and user repositories are read-only from the engine's
// perspective and feed only the statistics derivation.
func NewEngine(books *repository.BookRepo, categories *repository.CategoryRepo, users *repository.UserRepo, records *repository.BorrowRepo) *Engine {
	if books == nil || categories == nil || users == nil || records == nil {
		panic("nil repository passed to NewEngine")
	}
	return &Engine{books: books, categories: categories, users: users, records: records}
}

// Borrow checks out one copy of a book for a user.  It fails with
// repository.ErrBookNotFound when the book does not exist and with
// ErrNoCopiesAvailable when AvailableCopies is zero; neither failure
// mutates anything.  On success it decrements the book's available count
// and appends a new record due in LoanPeriod, writing both collections
// before returning.  There is no per-user loan limit and nothing stops a
// user from borrowing the same title twice.
func (e *Engine) Borrow(ctx context.Context, bookID, userID string) (model.BorrowRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	books, err := e.books.All(ctx)
	if err != nil {
		return model.BorrowRecord{}, err
	}
	idx := -1
	for i := range books {
		if books[i].ID == bookID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.BorrowRecord{}, repository.ErrBookNotFound
	}
	if books[idx].AvailableCopies <= 0 {
		return model.BorrowRecord{}, ErrNoCopiesAvailable
	}

	records, err := e.records.All(ctx)
	if err != nil {
		return model.BorrowRecord{}, err
	}

	now := time.Now().UTC()
	rec := model.BorrowRecord{
		ID:           uuid.NewString(),
		UserID:       userID,
		BookID:       bookID,
		BorrowDate:   now,
		DueDate:      now.Add(LoanPeriod),
		Status:       model.StatusBorrowed,
		RenewalCount: 0,
	}
	books[idx].AvailableCopies--
	records = append(records, rec)

	if err := e.books.ReplaceAll(ctx, books); err != nil {
		return model.BorrowRecord{}, err
	}
	if err := e.records.ReplaceAll(ctx, records); err != nil {
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

// Return closes out a loan.  A missing record is a silent no-op.  For an
// existing record it sets the status to returned, stamps ReturnDate and
// credits the book's available count by one, keyed only on the record's
// existence: submitting the same return twice credits the book twice and
// can push AvailableCopies past TotalCopies.  Callers must not resubmit
// returns.  A record whose book has since been deleted still flips to
// returned; only the copy credit is skipped.
func (e *Engine) Return(ctx context.Context, recordID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	records, err := e.records.All(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i := range records {
		if records[i].ID == recordID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	now := time.Now().UTC()
	records[idx].Status = model.StatusReturned
	records[idx].ReturnDate = &now

	books, err := e.books.All(ctx)
	if err != nil {
		return err
	}
	for i := range books {
		if books[i].ID == records[idx].BookID {
			books[i].AvailableCopies++
			break
		}
	}

	if err := e.books.ReplaceAll(ctx, books); err != nil {
		return err
	}
	return e.records.ReplaceAll(ctx, records)
}

// Renew extends a loan by LoanPeriod counted from the current due date,
// not from now, increments the renewal count and forces the status back
// to borrowed.  It fails with repository.ErrRecordNotFound for unknown
// records and with ErrRenewalLimit once MaxRenewals is reached; a failed
// renew leaves the record untouched.  An overdue loan renews like any
// other: blocking renewal of overdue loans is a caller policy, not an
// engine rule.
func (e *Engine) Renew(ctx context.Context, recordID string) (model.BorrowRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	records, err := e.records.All(ctx)
	if err != nil {
		return model.BorrowRecord{}, err
	}
	for i := range records {
		if records[i].ID != recordID {
			continue
		}
		if records[i].RenewalCount >= MaxRenewals {
			return model.BorrowRecord{}, ErrRenewalLimit
		}
		records[i].DueDate = records[i].DueDate.Add(LoanPeriod)
		records[i].RenewalCount++
		records[i].Status = model.StatusBorrowed
		if err := e.records.ReplaceAll(ctx, records); err != nil {
			return model.BorrowRecord{}, err
		}
		return records[i], nil
	}
	return model.BorrowRecord{}, repository.ErrRecordNotFound
}

// OverdueRecords returns every record that is still borrowed and past its
// due date, evaluated against the wall clock at call time.  Pure query.
func (e *Engine) OverdueRecords(ctx context.Context) ([]model.BorrowRecord, error) {
	records, err := e.records.All(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	overdue := make([]model.BorrowRecord, 0)
	for _, rec := range records {
		if rec.Overdue(now) {
			overdue = append(overdue, rec)
		}
	}
	return overdue, nil
}

// UserRecords returns all records for a user, borrowed and returned, in
// insertion order.
func (e *Engine) UserRecords(ctx context.Context, userID string) ([]model.BorrowRecord, error) {
	records, err := e.records.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.BorrowRecord, 0)
	for _, rec := range records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Stats reads all four collections and derives the current summary.
func (e *Engine) Stats(ctx context.Context) (model.LibraryStats, error) {
	books, err := e.books.All(ctx)
	if err != nil {
		return model.LibraryStats{}, err
	}
	categories, err := e.categories.All(ctx)
	if err != nil {
		return model.LibraryStats{}, err
	}
	users, err := e.users.All(ctx)
	if err != nil {
		return model.LibraryStats{}, err
	}
	records, err := e.records.All(ctx)
	if err != nil {
		return model.LibraryStats{}, err
	}
	return ComputeStats(books, categories, users, records), nil
}
