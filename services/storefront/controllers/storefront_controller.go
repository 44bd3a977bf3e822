package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vedantpatel1997/dapr-storefront/pkg/apperrors"
	"github.com/vedantpatel1997/dapr-storefront/pkg/logger"
	"github.com/vedantpatel1997/dapr-storefront/services/storefront/clients"
)

const jsonContentType = "application/json; charset=utf-8"

type StorefrontController struct {
	downstream *clients.Downstream
}

func NewStorefrontController(downstream *clients.Downstream) *StorefrontController {
	return &StorefrontController{downstream: downstream}
}

func (sc *StorefrontController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (sc *StorefrontController) GetProducts(c *gin.Context) {
	raw, err := sc.downstream.GetProducts(c.Request.Context())
	if err != nil {
		sc.fail(c, "failed to load products", err)
		return
	}
	c.Data(http.StatusOK, jsonContentType, raw)
}

func (sc *StorefrontController) GetCart(c *gin.Context) {
	raw, err := sc.downstream.GetCart(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		sc.fail(c, "failed to load cart", err)
		return
	}
	c.Data(http.StatusOK, jsonContentType, raw)
}

func (sc *StorefrontController) AddCartItem(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	resp, err := sc.downstream.AddCartItem(c.Request.Context(), c.Param("customerId"), body)
	if err != nil {
		sc.fail(c, "failed to add cart item", err)
		return
	}
	c.Data(resp.Status, jsonContentType, resp.Body)
}

func (sc *StorefrontController) Checkout(c *gin.Context) {
	resp, err := sc.downstream.Checkout(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		sc.fail(c, "checkout failed", err)
		return
	}
	c.Data(resp.Status, jsonContentType, resp.Body)
}

// GetOrder keeps not-found and downstream outage distinct: a missing order
// is a 404 with the order id, an unreachable checkout service is a 502.
func (sc *StorefrontController) GetOrder(c *gin.Context) {
	orderID := c.Param("orderId")

	raw, err := sc.downstream.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		sc.fail(c, "failed to load order", err)
		return
	}
	if raw == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found", "orderId": orderID})
		return
	}
	c.Data(http.StatusOK, jsonContentType, raw)
}

func (sc *StorefrontController) fail(c *gin.Context, msg string, err error) {
	logger.L().Error(msg, zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(apperrors.Status(err), gin.H{"message": msg})
}
