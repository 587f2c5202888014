// Package storage provides the key/value adapters that back persisted
// client state.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a key has never been written or was deleted
var ErrNotFound = errors.New("storage: key not found")

// Adapter is a durable key/value store
type Adapter interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// GetJSON loads key into out. It returns false when the key is absent.
func GetJSON(ctx context.Context, a Adapter, key string, out interface{}) (bool, error) {
	raw, err := a.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores value under key as JSON
func SetJSON(ctx context.Context, a Adapter, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return a.Set(ctx, key, raw)
}
