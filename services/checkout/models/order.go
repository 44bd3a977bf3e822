package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusConfirmed is the only status the checkout workflow produces; orders
// are immutable once created.
const StatusConfirmed = "Confirmed"

// CartItem is the checkout service's view of a cart line as received from
// the cart service. LineTotal comes off the wire.
type CartItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// Cart is the wire shape returned by the cart service.
type Cart struct {
	CustomerID string          `json:"customerId"`
	Items      []CartItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
}

// Order snapshots a cart at checkout time. Created only by Checkout, never
// updated, never deleted.
type Order struct {
	OrderID       string          `json:"orderId"`
	CustomerID    string          `json:"customerId"`
	Items         []CartItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	CheckedOutUtc time.Time       `json:"checkedOutUtc"`
	Status        string          `json:"status"`
}

// CheckoutCompletedEvent is the projection of an order published once per
// successful checkout.
type CheckoutCompletedEvent struct {
	OrderID       string          `json:"orderId"`
	CustomerID    string          `json:"customerId"`
	Total         decimal.Decimal `json:"total"`
	CheckedOutUtc time.Time       `json:"checkedOutUtc"`
}
