package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line in a customer's cart. LineTotal is derived and only
// appears on the wire.
type CartItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i CartItem) MarshalJSON() ([]byte, error) {
	type alias CartItem
	return json.Marshal(struct {
		alias
		LineTotal decimal.Decimal `json:"lineTotal"`
	}{alias(i), i.LineTotal()})
}

// Cart is the per-customer aggregate. One cart per customer; created
// implicitly on the first add, destroyed by delete or by the
// checkout-completed reaction.
type Cart struct {
	CustomerID string     `json:"customerId"`
	Items      []CartItem `json:"items"`
}

// NewCart returns an empty cart for the customer.
func NewCart(customerID string) *Cart {
	return &Cart{CustomerID: customerID, Items: []CartItem{}}
}

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c Cart) MarshalJSON() ([]byte, error) {
	type alias Cart
	return json.Marshal(struct {
		alias
		Total decimal.Decimal `json:"total"`
	}{alias(c), c.Total()})
}

// CheckoutCompletedEvent is the projection of an order published once per
// successful checkout and consumed at-least-once by the cart-clear handler.
type CheckoutCompletedEvent struct {
	OrderID       string          `json:"orderId"`
	CustomerID    string          `json:"customerId"`
	Total         decimal.Decimal `json:"total"`
	CheckedOutUtc time.Time       `json:"checkedOutUtc"`
}
