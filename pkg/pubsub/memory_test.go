package pubsub

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryBusDeliversToAllHandlers(t *testing.T) {
	bus := NewMemoryBus()

	var first, second [][]byte
	bus.Handle("checkout.completed.v1", func(_ context.Context, payload []byte) error {
		first = append(first, payload)
		return nil
	})
	bus.Handle("checkout.completed.v1", func(_ context.Context, payload []byte) error {
		second = append(second, payload)
		return nil
	})

	err := bus.Publish(context.Background(), "checkout.completed.v1", "cust-1", []byte("evt"))
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
}

func TestMemoryBusDuplicateDelivery(t *testing.T) {
	bus := NewMemoryBus()

	var got int
	bus.Handle("checkout.completed.v1", func(_ context.Context, _ []byte) error {
		got++
		return nil
	})

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, "checkout.completed.v1", "cust-1", []byte("evt")))
	require.NoError(t, bus.Publish(ctx, "checkout.completed.v1", "cust-1", []byte("evt")))
	require.Equal(t, 2, got)
}

func TestMemoryBusHandlerErrorDoesNotStopDispatch(t *testing.T) {
	bus := NewMemoryBus()

	var delivered bool
	bus.Handle("t", func(_ context.Context, _ []byte) error {
		return errors.New("handler blew up")
	})
	bus.Handle("t", func(_ context.Context, _ []byte) error {
		delivered = true
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), "t", "k", nil))
	require.True(t, delivered)
}

func TestMemoryBusTopicsAreIsolated(t *testing.T) {
	bus := NewMemoryBus()

	var got int
	bus.Handle("a", func(_ context.Context, _ []byte) error {
		got++
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), "b", "k", nil))
	require.Zero(t, got)
}
