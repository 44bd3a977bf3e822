package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vedantpatel1997/dapr-storefront/services/checkout/controllers"
	checkoutsvc "github.com/vedantpatel1997/dapr-storefront/services/checkout/services"
)

func RegisterCheckoutRoutes(r *gin.Engine, svc *checkoutsvc.CheckoutService, checkoutTopic string) {
	controller := controllers.NewCheckoutController(svc)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"appId":      "checkout-service",
			"message":    "Checkout microservice is running",
			"stateStore": "statestore",
			"topic":      checkoutTopic,
		})
	})

	r.POST("/checkout/:customerId", controller.Checkout)
	r.GET("/orders/:orderId", controller.GetOrder)
}
