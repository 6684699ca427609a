package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, KeyReports)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, KeyReports, []byte(`[]`)))
	value, err := store.Get(ctx, KeyReports)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)

	require.NoError(t, store.Delete(ctx, KeyReports))
	_, err = store.Get(ctx, KeyReports)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// deleting an absent key is a no-op
	require.NoError(t, store.Delete(ctx, "ghost"))
	require.NoError(t, store.Close())
}

func TestMemoryStore_ValueIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := []byte("light")
	require.NoError(t, store.Set(ctx, KeyTheme, original))
	original[0] = 'X'

	stored, err := store.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, []byte("light"), stored)
}
