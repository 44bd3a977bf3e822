package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAbsentKeyIsNotAnError(t *testing.T) {
	s := NewMemoryStore()

	value, err := s.Get(context.Background(), "cart:missing")
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "order:1", []byte(`{"orderId":"1"}`)))

	value, err := s.Get(ctx, "order:1")
	require.NoError(t, err)
	require.JSONEq(t, `{"orderId":"1"}`, string(value))

	// Mutating the returned slice must not leak into the store.
	value[0] = 'X'
	again, err := s.Get(ctx, "order:1")
	require.NoError(t, err)
	require.JSONEq(t, `{"orderId":"1"}`, string(again))
}

func TestMemoryStoreOverwriteLastWriteWins(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "cart:c1", []byte("first")))
	require.NoError(t, s.Set(ctx, "cart:c1", []byte("second")))

	value, err := s.Get(ctx, "cart:c1")
	require.NoError(t, err)
	require.Equal(t, "second", string(value))
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "cart:c1", []byte("data")))
	require.NoError(t, s.Delete(ctx, "cart:c1"))
	require.NoError(t, s.Delete(ctx, "cart:c1"))

	value, err := s.Get(ctx, "cart:c1")
	require.NoError(t, err)
	require.Nil(t, value)
	require.Zero(t, s.Len())
}
