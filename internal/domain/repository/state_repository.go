// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"coffissimo/internal/errors"
)

// ErrStateNotFound is returned when no record is stored under the requested key.
var ErrStateNotFound = errors.New("state not found")

// StateRepository is a best-effort local key/value store holding serialized store records.
type StateRepository interface {
	// Load returns the raw record stored under key, or ErrStateNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the record stored under key.
	Save(ctx context.Context, key string, payload []byte) error

	// Delete removes the record stored under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
