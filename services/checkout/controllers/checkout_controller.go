package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vedantpatel1997/dapr-storefront/pkg/apperrors"
	"github.com/vedantpatel1997/dapr-storefront/pkg/logger"
	checkoutsvc "github.com/vedantpatel1997/dapr-storefront/services/checkout/services"
)

type CheckoutController struct {
	svc *checkoutsvc.CheckoutService
}

func NewCheckoutController(svc *checkoutsvc.CheckoutService) *CheckoutController {
	return &CheckoutController{svc: svc}
}

// Checkout snapshots the customer's cart into a confirmed order.
func (cc *CheckoutController) Checkout(c *gin.Context) {
	customerID := c.Param("customerId")

	order, err := cc.svc.Checkout(c.Request.Context(), customerID)
	if err != nil {
		var emptyCart *apperrors.EmptyCartError
		if errors.As(err, &emptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty", "customerId": customerID})
			return
		}

		var pubErr *apperrors.PublicationError
		if errors.As(err, &pubErr) {
			// The order exists; the caller gets its id so it can be reconciled.
			c.JSON(http.StatusBadGateway, gin.H{
				"message": "order created but completion event was not published",
				"orderId": pubErr.OrderID,
			})
			return
		}

		logger.L().Error("Checkout failed", zap.String("customer_id", customerID), zap.Error(err))
		c.JSON(apperrors.Status(err), gin.H{"message": "checkout failed", "customerId": customerID})
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetOrder reads an order by id; absence is a 404 with the missing id.
func (cc *CheckoutController) GetOrder(c *gin.Context) {
	orderID := c.Param("orderId")

	order, err := cc.svc.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found", "orderId": orderID})
			return
		}
		logger.L().Error("Get order failed", zap.String("order_id", orderID), zap.Error(err))
		c.JSON(apperrors.Status(err), gin.H{"message": "failed to get order", "orderId": orderID})
		return
	}

	c.JSON(http.StatusOK, order)
}
