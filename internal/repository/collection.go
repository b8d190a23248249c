package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tadelakiran/Book-Library-Management/internal/store"
)

// readAll loads and decodes a whole collection.  An absent key decodes to
// an empty slice so callers never see "missing collection" as a distinct
// state.
func readAll[T any](ctx context.Context, s store.Store, key string) ([]T, error) {
	raw, ok, err := s.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, nil
}

// writeAll encodes and replaces a whole collection.
func writeAll[T any](ctx context.Context, s store.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Write(ctx, key, raw)
}
