// Package subscriber wires the checkout-completed topic to the cart-clear
// reaction.
package subscriber

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/vedantpatel1997/dapr-storefront/pkg/logger"
	"github.com/vedantpatel1997/dapr-storefront/pkg/pubsub"
	"github.com/vedantpatel1997/dapr-storefront/services/cart/models"
	cartsvc "github.com/vedantpatel1997/dapr-storefront/services/cart/services"
)

// Handler returns the message handler clearing carts on checkout-completed
// events. A malformed payload is logged and dropped, never retried.
func Handler(svc *cartsvc.CartService) pubsub.Handler {
	return func(ctx context.Context, payload []byte) error {
		var event models.CheckoutCompletedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			logger.L().Error("Invalid checkout completed event", zap.Error(err))
			return nil
		}
		return svc.HandleCheckoutCompleted(ctx, event)
	}
}

// Run consumes the topic until ctx is cancelled.
func Run(ctx context.Context, sub pubsub.Subscriber, topic, group string, svc *cartsvc.CartService) error {
	return sub.Subscribe(ctx, topic, group, Handler(svc))
}
