package services

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/vedantpatel1997/dapr-storefront/pkg/apperrors"
	"github.com/vedantpatel1997/dapr-storefront/pkg/logger"
	"github.com/vedantpatel1997/dapr-storefront/pkg/store"
	"github.com/vedantpatel1997/dapr-storefront/services/cart/models"
)

// CartService owns the cart aggregates in the durable store. No other
// component writes to cart keys.
type CartService struct {
	store store.Store
}

func NewCartService(s store.Store) *CartService {
	return &CartService{store: s}
}

func cartKey(customerID string) string {
	return "cart:" + customerID
}

// GetCart returns the stored cart, or a fresh empty cart when none exists.
// A missing cart is never an error.
func (s *CartService) GetCart(ctx context.Context, customerID string) (*models.Cart, error) {
	data, err := s.store.Get(ctx, cartKey(customerID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return models.NewCart(customerID), nil
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, &apperrors.DownstreamError{Target: "statestore", Op: "decode cart", Err: err}
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

// AddItem loads or creates the cart, merges the item by productId
// (case-insensitive; quantities sum, stored name and price stay), persists
// and returns the updated cart. Same-customer concurrent adds may lose
// updates under the store's last-write-wins contract.
func (s *CartService) AddItem(ctx context.Context, customerID string, item models.CartItem) (*models.Cart, error) {
	switch {
	case item.ProductID == "":
		return nil, &apperrors.ValidationError{Field: "productId", Reason: "must not be empty"}
	case item.Quantity < 1:
		return nil, &apperrors.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	case !item.UnitPrice.IsPositive():
		return nil, &apperrors.ValidationError{Field: "unitPrice", Reason: "must be greater than zero"}
	}

	cart, err := s.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if strings.EqualFold(cart.Items[i].ProductID, item.ProductID) {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, cartKey(customerID), data); err != nil {
		return nil, err
	}
	return cart, nil
}

// DeleteCart removes the cart. Deleting an absent cart is a no-op success.
func (s *CartService) DeleteCart(ctx context.Context, customerID string) error {
	return s.store.Delete(ctx, cartKey(customerID))
}

// HandleCheckoutCompleted clears the cart for the event's customer. The
// event is delivered at-least-once, so this is delete-if-present.
func (s *CartService) HandleCheckoutCompleted(ctx context.Context, event models.CheckoutCompletedEvent) error {
	if event.CustomerID == "" {
		logger.L().Warn("Checkout completed event without customerId",
			zap.String("order_id", event.OrderID),
		)
		return nil
	}

	if err := s.DeleteCart(ctx, event.CustomerID); err != nil {
		return err
	}

	logger.L().Info("Cleared cart after checkout",
		zap.String("customer_id", event.CustomerID),
		zap.String("order_id", event.OrderID),
	)
	return nil
}
