package model

import "time"

// Category groups books in the catalog.  A category may only be deleted
// while no book references it; the repository enforces that contract.
//
// Fields:
//  ID          – opaque identifier of the category.
//  Name        – display name.
//  Description – free-form description.
//  CreatedAt   – creation timestamp (UTC).
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
