// Package memory keeps store records in process memory. Records vanish when the process exits.
package memory

import (
	"bytes"
	"context"
	"sync"

	"coffissimo/internal/domain/repository"
)

type stateRepository struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewStateRepository is the constructor for the in-memory state repository.
func NewStateRepository() repository.StateRepository {
	return &stateRepository{
		records: make(map[string][]byte),
	}
}

func (repo *stateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	payload, ok := repo.records[key]
	if !ok {
		return nil, repository.ErrStateNotFound
	}

	return bytes.Clone(payload), nil
}

func (repo *stateRepository) Save(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.records[key] = bytes.Clone(payload)

	return nil
}

func (repo *stateRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.records, key)

	return nil
}
