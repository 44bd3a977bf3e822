package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vedantpatel1997/dapr-storefront/pkg/apperrors"
	"github.com/vedantpatel1997/dapr-storefront/pkg/logger"
	"github.com/vedantpatel1997/dapr-storefront/services/cart/models"
	cartsvc "github.com/vedantpatel1997/dapr-storefront/services/cart/services"
)

type AddCartItemRequest struct {
	ProductID   string          `json:"productId" binding:"required"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

type CartController struct {
	svc *cartsvc.CartService
}

func NewCartController(svc *cartsvc.CartService) *CartController {
	return &CartController{svc: svc}
}

// GetCart returns the current cart for a customer; a missing cart renders
// as an empty cart, never as an error.
func (cc *CartController) GetCart(c *gin.Context) {
	customerID := c.Param("customerId")

	cart, err := cc.svc.GetCart(c.Request.Context(), customerID)
	if err != nil {
		logger.L().Error("Get cart failed", zap.String("customer_id", customerID), zap.Error(err))
		c.JSON(apperrors.Status(err), gin.H{"message": "failed to get cart", "customerId": customerID})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// AddItem adds an item to the cart, merging with an existing line for the
// same product.
func (cc *CartController) AddItem(c *gin.Context) {
	customerID := c.Param("customerId")

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	item := models.CartItem{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		UnitPrice:   req.UnitPrice,
		Quantity:    req.Quantity,
	}

	cart, err := cc.svc.AddItem(c.Request.Context(), customerID, item)
	if err != nil {
		status := apperrors.Status(err)
		if status >= 500 {
			logger.L().Error("Add item failed", zap.String("customer_id", customerID), zap.Error(err))
		}
		c.JSON(status, gin.H{"message": err.Error(), "customerId": customerID})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// DeleteCart removes the customer's cart; deleting an absent cart succeeds.
func (cc *CartController) DeleteCart(c *gin.Context) {
	customerID := c.Param("customerId")

	if err := cc.svc.DeleteCart(c.Request.Context(), customerID); err != nil {
		logger.L().Error("Delete cart failed", zap.String("customer_id", customerID), zap.Error(err))
		c.JSON(apperrors.Status(err), gin.H{"message": "failed to delete cart", "customerId": customerID})
		return
	}

	c.Status(http.StatusNoContent)
}
