// Package catalog holds the static product catalog. The catalog has no
// state; lookups are in-memory.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
}

var products = []Product{
	{ID: "P-100", Name: "Mechanical Keyboard", Price: decimal.NewFromFloat(89.00), Currency: "USD", Description: "75% layout with hot-swappable switches"},
	{ID: "P-200", Name: "Ergonomic Mouse", Price: decimal.NewFromFloat(54.00), Currency: "USD", Description: "Vertical mouse for reduced wrist strain"},
	{ID: "P-300", Name: "4K Monitor", Price: decimal.NewFromFloat(329.00), Currency: "USD", Description: "27-inch IPS monitor with USB-C"},
	{ID: "P-400", Name: "Laptop Stand", Price: decimal.NewFromFloat(39.99), Currency: "USD", Description: "Aluminum stand for better posture"},
}

// List returns every product in the catalog.
func List() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Find looks a product up by id, case-insensitively.
func Find(id string) (Product, bool) {
	for _, p := range products {
		if strings.EqualFold(p.ID, id) {
			return p, true
		}
	}
	return Product{}, false
}
