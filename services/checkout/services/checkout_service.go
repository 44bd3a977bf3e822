package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vedantpatel1997/dapr-storefront/pkg/apperrors"
	"github.com/vedantpatel1997/dapr-storefront/pkg/invoke"
	"github.com/vedantpatel1997/dapr-storefront/pkg/logger"
	"github.com/vedantpatel1997/dapr-storefront/pkg/pubsub"
	"github.com/vedantpatel1997/dapr-storefront/pkg/store"
	"github.com/vedantpatel1997/dapr-storefront/services/checkout/models"
)

// CheckoutService owns the order aggregates. Checkout reads the customer's
// cart from the cart service, materializes an immutable order, persists it,
// then publishes the completion event — persistence always completes before
// publication so an event observer can read the order by id.
type CheckoutService struct {
	invoker invoke.Client
	store   store.Store
	bus     pubsub.Publisher
	topic   string
	cartApp string

	// Now and NewOrderID are injectable for tests.
	Now        func() time.Time
	NewOrderID func() string
}

func NewCheckoutService(invoker invoke.Client, st store.Store, bus pubsub.Publisher, topic, cartApp string) *CheckoutService {
	return &CheckoutService{
		invoker: invoker,
		store:   st,
		bus:     bus,
		topic:   topic,
		cartApp: cartApp,
		Now:     func() time.Time { return time.Now().UTC() },
		NewOrderID: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")
		},
	}
}

func orderKey(orderID string) string {
	return "order:" + orderID
}

// Checkout snapshots the customer's cart into a confirmed order. An empty
// cart fails with EmptyCartError before any side effect. A publish failure
// after the order is persisted returns the order together with a
// PublicationError; the order stands and the cart is not cleared.
func (s *CheckoutService) Checkout(ctx context.Context, customerID string) (*models.Order, error) {
	resp, err := s.invoker.Invoke(ctx, s.cartApp, http.MethodGet, "cart/"+url.PathEscape(customerID), nil)
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := invoke.DecodeJSON(resp, s.cartApp, &cart); err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, &apperrors.EmptyCartError{CustomerID: customerID}
	}

	order := &models.Order{
		OrderID:       s.NewOrderID(),
		CustomerID:    customerID,
		Items:         append([]models.CartItem(nil), cart.Items...),
		Total:         cart.Total,
		CheckedOutUtc: s.Now(),
		Status:        models.StatusConfirmed,
	}

	data, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, orderKey(order.OrderID), data); err != nil {
		return nil, err
	}

	event := models.CheckoutCompletedEvent{
		OrderID:       order.OrderID,
		CustomerID:    order.CustomerID,
		Total:         order.Total,
		CheckedOutUtc: order.CheckedOutUtc,
	}
	payload, err := json.Marshal(event)
	if err == nil {
		err = s.bus.Publish(ctx, s.topic, order.CustomerID, payload)
	}
	if err != nil {
		pubErr := &apperrors.PublicationError{Topic: s.topic, OrderID: order.OrderID, Err: err}
		logger.L().Error("Order persisted but event publish failed",
			zap.String("order_id", order.OrderID),
			zap.String("customer_id", order.CustomerID),
			zap.String("topic", s.topic),
			zap.Error(err),
		)
		return order, pubErr
	}

	logger.L().Info("Checkout completed",
		zap.String("order_id", order.OrderID),
		zap.String("customer_id", order.CustomerID),
		zap.String("total", order.Total.String()),
	)
	return order, nil
}

// GetOrder reads an order by id; an absent key is a NotFoundError carrying
// the order id.
func (s *CheckoutService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	data, err := s.store.Get(ctx, orderKey(orderID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, &apperrors.NotFoundError{Resource: "order", ID: orderID}
	}

	var order models.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, &apperrors.DownstreamError{Target: "statestore", Op: "decode order", Err: err}
	}
	return &order, nil
}
