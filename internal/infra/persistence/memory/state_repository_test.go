package memory

import (
	"context"
	"testing"

	"coffissimo/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRepository_SaveLoadDelete(t *testing.T) {
	repo := NewStateRepository()
	ctx := context.Background()

	_, err := repo.Load(ctx, "coffee-shop-storage")
	require.ErrorIs(t, err, repository.ErrStateNotFound)

	require.NoError(t, repo.Save(ctx, "coffee-shop-storage", []byte(`{"state":{},"version":0}`)))

	payload, err := repo.Load(ctx, "coffee-shop-storage")
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":{},"version":0}`, string(payload))

	require.NoError(t, repo.Delete(ctx, "coffee-shop-storage"))
	require.NoError(t, repo.Delete(ctx, "coffee-shop-storage"))

	_, err = repo.Load(ctx, "coffee-shop-storage")
	require.ErrorIs(t, err, repository.ErrStateNotFound)
}

func TestStateRepository_CopiesPayload(t *testing.T) {
	repo := NewStateRepository()
	ctx := context.Background()

	payload := []byte("abc")
	require.NoError(t, repo.Save(ctx, "k", payload))
	payload[0] = 'z'

	loaded, err := repo.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(loaded))

	loaded[1] = 'z'
	again, err := repo.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestStateRepository_CancelledContext(t *testing.T) {
	repo := NewStateRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Save(ctx, "k", []byte("v")), context.Canceled)
	_, err := repo.Load(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
