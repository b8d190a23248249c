// Package store defines the durable key-value store the service persists
// its collections in.  Each collection is addressed by a fixed key and is
// read and written as a whole: there is no partial-record update at the
// storage boundary.  The consistency level is last-write-wins per key;
// overlapping writers are not detected.  Callers that need atomicity
// across collections must serialize themselves (the lending engine does).
package store

import "context"

// Collection keys.  The key space is closed: these constants enumerate
// every collection the service owns.
const (
	KeyBooks         = "books"
	KeyCategories    = "categories"
	KeyUsers         = "users"
	KeyBorrowRecords = "borrowRecords"
	KeyRefreshTokens = "refreshTokens"
)

// Store is the durable persistence boundary.  Read returns the raw JSON
// document stored under key, with ok=false when the key is entirely
// absent.  Write replaces the whole document under key.  Storage failures
// are never swallowed: both methods surface them as errors for callers to
// handle.
type Store interface {
	Read(ctx context.Context, key string) (raw []byte, ok bool, err error)
	Write(ctx context.Context, key string, raw []byte) error
	Close() error
}
