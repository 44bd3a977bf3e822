// Package pubsub provides the publish/subscribe channel that decouples
// checkout from the cart-clearing reaction. Delivery is at-least-once;
// handlers must be idempotent.
package pubsub

import "context"

// Handler processes one delivered message. Returning an error marks the
// delivery as failed; the dispatcher logs it and does not retry.
type Handler func(ctx context.Context, payload []byte) error

// Publisher publishes a payload to a named topic. A failed publish is
// surfaced to the caller, never swallowed.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

// Subscriber runs a consume loop for a topic, invoking the handler once per
// delivered message, until the context is cancelled.
type Subscriber interface {
	Subscribe(ctx context.Context, topic, group string, handler Handler) error
}
