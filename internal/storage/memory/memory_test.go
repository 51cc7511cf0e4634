package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage/memory"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store, err := memory.NewStore(memory.StoreConfig{})
	require.NoError(t, err)

	_, err = store.Get(ctx, "tasks")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	require.NoError(t, store.Set(ctx, "tasks", []byte(`[]`)))
	got, err := store.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, store.Set(ctx, "tasks", []byte(`[{"id":1}]`)))
	got, err = store.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), got)

	// Returned values are copies.
	got[0] = 'X'
	again, err := store.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, byte('['), again[0])

	_, err = store.Get(ctx, "other")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}
