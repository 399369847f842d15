package cache

import (
	"context"
	"encoding/json"
	"time"
)

const (
	KeyHierarchy      = "hierarchy:v1"
	KeyActiveStatuses = "statuses:active"
	rolePrefix        = "role:"
)

func RoleKey(subject string) string {
	return rolePrefix + subject
}

// Cache is a byte-oriented store with per-entry TTL. Writers call Invalidate
// synchronously after committing; the TTL only bounds staleness for changes
// made outside this service.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// GetJSON decodes a cached entry into v. A decoding failure counts as a miss.
func GetJSON[T any](ctx context.Context, c Cache, key string) (T, bool, error) {
	var v T
	raw, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return v, false, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, nil
	}
	return v, true, nil
}

func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, raw, ttl)
}
