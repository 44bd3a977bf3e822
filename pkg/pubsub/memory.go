package pubsub

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/vedantpatel1997/dapr-storefront/pkg/logger"
)

// MemoryBus is an in-process bus delivering published messages
// synchronously to every registered handler. Used by tests and local runs
// without a broker.
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[string][]Handler)}
}

// Handle registers a handler for a topic without blocking.
func (b *MemoryBus) Handle(topic string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], handler)
}

func (b *MemoryBus) Publish(ctx context.Context, topic, key string, payload []byte) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[topic]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, payload); err != nil {
			logger.L().Error("Message handler failed",
				zap.String("topic", topic),
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
	return nil
}

// Subscribe registers the handler, then blocks until ctx is cancelled so it
// satisfies the same contract as the Kafka consumer loop.
func (b *MemoryBus) Subscribe(ctx context.Context, topic, _ string, handler Handler) error {
	b.Handle(topic, handler)
	<-ctx.Done()
	return nil
}
