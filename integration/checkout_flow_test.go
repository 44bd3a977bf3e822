package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vedantpatel1997/dapr-storefront/pkg/invoke"
	"github.com/vedantpatel1997/dapr-storefront/pkg/pubsub"
	"github.com/vedantpatel1997/dapr-storefront/pkg/store"
	cartmodels "github.com/vedantpatel1997/dapr-storefront/services/cart/models"
	cartroutes "github.com/vedantpatel1997/dapr-storefront/services/cart/routes"
	cartsvc "github.com/vedantpatel1997/dapr-storefront/services/cart/services"
	"github.com/vedantpatel1997/dapr-storefront/services/cart/subscriber"
	checkoutmodels "github.com/vedantpatel1997/dapr-storefront/services/checkout/models"
	checkoutroutes "github.com/vedantpatel1997/dapr-storefront/services/checkout/routes"
	checkoutsvc "github.com/vedantpatel1997/dapr-storefront/services/checkout/services"
	productroutes "github.com/vedantpatel1997/dapr-storefront/services/products/routes"
	"github.com/vedantpatel1997/dapr-storefront/services/storefront/clients"
	storefrontroutes "github.com/vedantpatel1997/dapr-storefront/services/storefront/routes"
)

const topic = "checkout.completed.v1"

// stack runs the whole system in-process: real gin routers behind httptest
// servers, direct invocation between them, a memory store per service and a
// synchronous memory bus carrying the checkout-completed event.
type stack struct {
	storefront *httptest.Server
}

func newStack(t *testing.T) *stack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bus := pubsub.NewMemoryBus()

	cartService := cartsvc.NewCartService(store.NewMemoryStore())
	bus.Handle(topic, subscriber.Handler(cartService))

	cartRouter := gin.New()
	cartroutes.RegisterCartRoutes(cartRouter, cartService, topic)
	cartServer := httptest.NewServer(cartRouter)
	t.Cleanup(cartServer.Close)

	productsRouter := gin.New()
	productroutes.RegisterProductRoutes(productsRouter)
	productsServer := httptest.NewServer(productsRouter)
	t.Cleanup(productsServer.Close)

	checkoutInvoker := invoke.NewHTTPClient(invoke.DirectResolver{Routes: map[string]string{
		"cart-service": cartServer.URL,
	}}, 5*time.Second)
	checkoutService := checkoutsvc.NewCheckoutService(checkoutInvoker, store.NewMemoryStore(), bus, topic, "cart-service")

	checkoutRouter := gin.New()
	checkoutroutes.RegisterCheckoutRoutes(checkoutRouter, checkoutService, topic)
	checkoutServer := httptest.NewServer(checkoutRouter)
	t.Cleanup(checkoutServer.Close)

	storefrontInvoker := invoke.NewHTTPClient(invoke.DirectResolver{Routes: map[string]string{
		"products-service": productsServer.URL,
		"cart-service":     cartServer.URL,
		"checkout-service": checkoutServer.URL,
	}}, 5*time.Second)
	downstream := clients.NewDownstream(storefrontInvoker, "products-service", "cart-service", "checkout-service")

	storefrontRouter := gin.New()
	storefrontroutes.RegisterStorefrontRoutes(storefrontRouter, downstream)
	storefrontServer := httptest.NewServer(storefrontRouter)
	t.Cleanup(storefrontServer.Close)

	return &stack{storefront: storefrontServer}
}

func (s *stack) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, s.storefront.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

type cartView struct {
	CustomerID string                `json:"customerId"`
	Items      []cartmodels.CartItem `json:"items"`
	Total      decimal.Decimal       `json:"total"`
}

func TestCheckoutFlowEndToEnd(t *testing.T) {
	s := newStack(t)

	// Two adds for the same product merge into one line.
	resp, _ := s.do(t, http.MethodPost, "/cart/cust-1/items",
		`{"productId":"P-1","productName":"Mechanical Keyboard","unitPrice":10.00,"quantity":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := s.do(t, http.MethodPost, "/cart/cust-1/items",
		`{"productId":"P-1","productName":"Mechanical Keyboard","unitPrice":10.00,"quantity":3}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cart cartView
	require.NoError(t, json.Unmarshal(body, &cart))
	require.Len(t, cart.Items, 1)
	require.Equal(t, 5, cart.Items[0].Quantity)
	require.True(t, cart.Total.Equal(decimal.NewFromInt(50)))

	// Checkout snapshots the cart into a confirmed order.
	resp, body = s.do(t, http.MethodPost, "/checkout/cust-1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var order checkoutmodels.Order
	require.NoError(t, json.Unmarshal(body, &order))
	require.Equal(t, checkoutmodels.StatusConfirmed, order.Status)
	require.True(t, order.Total.Equal(decimal.NewFromInt(50)))
	require.Len(t, order.OrderID, 32)

	// The completion event has cleared the cart.
	resp, body = s.do(t, http.MethodGet, "/cart/cust-1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &cart))
	require.Empty(t, cart.Items)
	require.True(t, cart.Total.IsZero())

	// The order is readable through the storefront by its id.
	resp, body = s.do(t, http.MethodGet, "/orders/"+order.OrderID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loaded checkoutmodels.Order
	require.NoError(t, json.Unmarshal(body, &loaded))
	require.Equal(t, order.OrderID, loaded.OrderID)
	require.True(t, loaded.Total.Equal(order.Total))
}

func TestCheckoutEmptyCartThroughStorefront(t *testing.T) {
	s := newStack(t)

	resp, body := s.do(t, http.MethodPost, "/checkout/nobody", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, string(body), "Cart is empty")
}

func TestUnknownOrderIsNotFoundThroughStorefront(t *testing.T) {
	s := newStack(t)

	resp, body := s.do(t, http.MethodGet, "/orders/ffffffffffffffffffffffffffffffff", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, string(body), "Order not found")
}

func TestProductsThroughStorefront(t *testing.T) {
	s := newStack(t)

	resp, body := s.do(t, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []map[string]any
	require.NoError(t, json.Unmarshal(body, &products))
	require.Len(t, products, 4)
}
