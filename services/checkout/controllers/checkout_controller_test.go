package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vedantpatel1997/dapr-storefront/pkg/invoke"
	"github.com/vedantpatel1997/dapr-storefront/pkg/store"
	"github.com/vedantpatel1997/dapr-storefront/services/checkout/models"
	checkoutsvc "github.com/vedantpatel1997/dapr-storefront/services/checkout/services"
)

type fakeInvoker struct {
	resp *invoke.Response
	err  error
}

func (f *fakeInvoker) Invoke(context.Context, string, string, string, []byte) (*invoke.Response, error) {
	return f.resp, f.err
}

type fakePublisher struct {
	fail bool
}

func (p *fakePublisher) Publish(context.Context, string, string, []byte) error {
	if p.fail {
		return errors.New("broker unreachable")
	}
	return nil
}

func newRouter(t *testing.T, inv invoke.Client, pub *fakePublisher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := checkoutsvc.NewCheckoutService(inv, store.NewMemoryStore(), pub, "checkout.completed.v1", "cart-service")
	controller := NewCheckoutController(svc)

	r := gin.New()
	r.POST("/checkout/:customerId", controller.Checkout)
	r.GET("/orders/:orderId", controller.GetOrder)
	return r
}

func cartBody(t *testing.T, items []models.CartItem) []byte {
	t.Helper()
	total := decimal.Zero
	for _, i := range items {
		total = total.Add(i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))))
	}
	body, err := json.Marshal(models.Cart{CustomerID: "cust-1", Items: items, Total: total})
	require.NoError(t, err)
	return body
}

func TestCheckoutEmptyCartRespondsBadRequest(t *testing.T) {
	inv := &fakeInvoker{resp: &invoke.Response{Status: http.StatusOK, Body: cartBody(t, nil)}}
	r := newRouter(t, inv, &fakePublisher{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkout/cust-1", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Cart is empty")
	require.Contains(t, w.Body.String(), "cust-1")
}

func TestCheckoutRespondsWithOrder(t *testing.T) {
	items := []models.CartItem{{ProductID: "P-1", UnitPrice: decimal.NewFromInt(10), Quantity: 5}}
	inv := &fakeInvoker{resp: &invoke.Response{Status: http.StatusOK, Body: cartBody(t, items)}}
	r := newRouter(t, inv, &fakePublisher{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkout/cust-1", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Equal(t, models.StatusConfirmed, order.Status)
	require.Len(t, order.OrderID, 32)
	require.True(t, order.Total.Equal(decimal.NewFromInt(50)))
}

func TestCheckoutPublishFailureRespondsBadGatewayWithOrderID(t *testing.T) {
	items := []models.CartItem{{ProductID: "P-1", UnitPrice: decimal.NewFromInt(10), Quantity: 1}}
	inv := &fakeInvoker{resp: &invoke.Response{Status: http.StatusOK, Body: cartBody(t, items)}}
	r := newRouter(t, inv, &fakePublisher{fail: true})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkout/cust-1", nil))

	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Contains(t, w.Body.String(), "orderId")
}

func TestGetOrderUnknownRespondsNotFound(t *testing.T) {
	r := newRouter(t, &fakeInvoker{}, &fakePublisher{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/nope", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "nope")
}
