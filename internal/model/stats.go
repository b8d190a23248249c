package model

// LibraryStats summarizes the current state of the library.  It is purely
// derived from the collections and holds no state of its own.
//
// Fields:
//  TotalBooks         – sum of TotalCopies across all books (copy count,
//                       not a title count).
//  TotalCategories    – number of categories.
//  TotalUsers         – number of users.
//  TotalBorrowedBooks – number of records currently in StatusBorrowed.
//  OverdueBooks       – number of borrowed records past their due date.
//  AvailableBooks     – sum of AvailableCopies across all books.
type LibraryStats struct {
	TotalBooks         int `json:"totalBooks"`
	TotalCategories    int `json:"totalCategories"`
	TotalUsers         int `json:"totalUsers"`
	TotalBorrowedBooks int `json:"totalBorrowedBooks"`
	OverdueBooks       int `json:"overdueBooks"`
	AvailableBooks     int `json:"availableBooks"`
}
