package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis persists each collection as a single Redis string keyed by the
// collection key under a namespace prefix.  SET replaces the whole value,
// which matches the last-write-wins contract exactly.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps an existing Redis client.  The prefix namespaces the
// collection keys so the store can share a database with the rate limiter
// and response cache ("library" yields keys like "library:books").
func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = "library"
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(k string) string { return r.prefix + ":" + k }

// Read fetches the document under key.  A missing key is reported as
// absent, not as an error.
func (r *Redis) Read(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, true, nil
}

// Write replaces the document under key with no expiry.
func (r *Redis) Write(ctx context.Context, key string, raw []byte) error {
	if err := r.client.Set(ctx, r.key(key), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying client connection.
func (r *Redis) Close() error { return r.client.Close() }
