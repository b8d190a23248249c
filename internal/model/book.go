package model

import "time"

// Book represents a title in the catalog together with its copy counts.
// The catalog tracks physical copies per title: TotalCopies is the number
// of copies the library owns and AvailableCopies is how many of them are
// currently on the shelf.  The lending engine is the only component that
// mutates AvailableCopies; every other field belongs to the catalog.
//
// Fields:
//  ID              – opaque identifier of the book.
//  Title           – book title.
//  Author          – author name.
//  ISBN            – ISBN string, stored verbatim.
//  CategoryID      – reference to a Category.  Not enforced as a foreign
//                    key; a dangling reference is tolerated.
//  Description     – free-form description shown in the catalog.
//  CoverURL        – optional cover image URL.
//  TotalCopies     – number of copies owned, at least 1.
//  AvailableCopies – copies currently available, 0..TotalCopies.
//  CreatedAt       – creation timestamp (UTC).
//  UpdatedAt       – timestamp of the last catalog mutation (UTC).
type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	CategoryID      string    `json:"categoryId"`
	Description     string    `json:"description,omitempty"`
	CoverURL        string    `json:"coverUrl,omitempty"`
	TotalCopies     int       `json:"totalCopies"`
	AvailableCopies int       `json:"availableCopies"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
