// Package repository provides typed access to the collections kept in the
// durable store.  Each repository owns one collection and reads/writes it
// whole, mirroring the storage contract.  Sentinel errors defined here let
// higher layers such as handlers distinguish failure scenarios: for
// example, ErrCategoryInUse signals that a delete cannot proceed because
// dependent records exist, while ErrEmailExists marks a registration
// conflict.
package repository

import "errors"

// ErrBookNotFound is returned when no book with the requested ID exists.
var ErrBookNotFound = errors.New("book not found")

// ErrCategoryNotFound is returned when no category with the requested ID
// exists.
var ErrCategoryNotFound = errors.New("category not found")

// ErrCategoryInUse is returned when a category delete is refused because
// one or more books still reference the category.  Handlers should
// translate this into an HTTP 409 response.
var ErrCategoryInUse = errors.New("category still referenced by books")

// ErrUserNotFound is returned when no user with the requested ID or email
// exists.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when a registration collides with an existing
// user's email (compared case-insensitively).
var ErrEmailExists = errors.New("email already exists")

// ErrRecordNotFound is returned when no borrow record with the requested
// ID exists.
var ErrRecordNotFound = errors.New("borrow record not found")
