package model

import "time"

// Borrow record statuses.  "Overdue" is deliberately not a status: it is a
// derived condition (StatusBorrowed with a due date in the past) and no
// operation ever stores it.
const (
	StatusBorrowed = "borrowed"
	StatusReturned = "returned"
)

// BorrowRecord tracks the lifecycle of a single loan.  A record is created
// by a successful borrow, mutated by renew and return, and never deleted.
//
// Fields:
//  ID           – opaque identifier of the record.
//  UserID       – borrower.
//  BookID       – borrowed book.
//  BorrowDate   – when the loan started (UTC).
//  DueDate      – when the loan is due; extended by renewals.
//  ReturnDate   – set when the book is returned, nil before that.
//  Status       – StatusBorrowed or StatusReturned.
//  RenewalCount – number of renewals applied, 0..2.
type BorrowRecord struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	BookID       string     `json:"bookId"`
	BorrowDate   time.Time  `json:"borrowDate"`
	DueDate      time.Time  `json:"dueDate"`
	ReturnDate   *time.Time `json:"returnDate,omitempty"`
	Status       string     `json:"status"`
	RenewalCount int        `json:"renewalCount"`
}

// Overdue reports whether the record is an active loan whose due date has
// passed at the given instant.
func (r BorrowRecord) Overdue(now time.Time) bool {
	return r.Status == StatusBorrowed && r.DueDate.Before(now)
}
