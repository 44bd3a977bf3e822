// Package clients provides the storefront's typed access to the downstream
// services through the remote invocation client. The storefront is a pure
// composition layer: each call maps onto exactly one downstream endpoint.
package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/vedantpatel1997/dapr-storefront/pkg/apperrors"
	"github.com/vedantpatel1997/dapr-storefront/pkg/invoke"
)

type Downstream struct {
	invoker     invoke.Client
	productsApp string
	cartApp     string
	checkoutApp string
}

func NewDownstream(invoker invoke.Client, productsApp, cartApp, checkoutApp string) *Downstream {
	return &Downstream{
		invoker:     invoker,
		productsApp: productsApp,
		cartApp:     cartApp,
		checkoutApp: checkoutApp,
	}
}

// GetProducts fetches the full catalog.
func (d *Downstream) GetProducts(ctx context.Context) (json.RawMessage, error) {
	return d.get(ctx, d.productsApp, "products")
}

// GetCart fetches the customer's cart; the cart service answers an empty
// cart for unknown customers, so this never reports not-found.
func (d *Downstream) GetCart(ctx context.Context, customerID string) (json.RawMessage, error) {
	return d.get(ctx, d.cartApp, "cart/"+url.PathEscape(customerID))
}

// AddCartItem relays the raw add-item request body; the downstream reply is
// passed through with its status so validation failures reach the caller.
func (d *Downstream) AddCartItem(ctx context.Context, customerID string, body []byte) (*invoke.Response, error) {
	return d.invoker.Invoke(ctx, d.cartApp, http.MethodPost, "cart/"+url.PathEscape(customerID)+"/items", body)
}

// Checkout triggers the checkout workflow; the reply passes through so an
// empty-cart rejection keeps its status and context.
func (d *Downstream) Checkout(ctx context.Context, customerID string) (*invoke.Response, error) {
	return d.invoker.Invoke(ctx, d.checkoutApp, http.MethodPost, "checkout/"+url.PathEscape(customerID), nil)
}

// GetOrder fetches an order by id. An absent order returns (nil, nil); any
// other downstream fault is an error, never collapsed into a null result.
func (d *Downstream) GetOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	raw, err := d.get(ctx, d.checkoutApp, "orders/"+url.PathEscape(orderID))
	if apperrors.IsNotFound(err) {
		return nil, nil
	}
	return raw, err
}

func (d *Downstream) get(ctx context.Context, app, path string) (json.RawMessage, error) {
	resp, err := d.invoker.Invoke(ctx, app, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := invoke.DecodeJSON(resp, app, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
