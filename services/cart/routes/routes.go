package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vedantpatel1997/dapr-storefront/services/cart/controllers"
	cartsvc "github.com/vedantpatel1997/dapr-storefront/services/cart/services"
)

func RegisterCartRoutes(r *gin.Engine, svc *cartsvc.CartService, checkoutTopic string) {
	controller := controllers.NewCartController(svc)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"appId":         "cart-service",
			"message":       "Cart microservice is running",
			"stateStore":    "statestore",
			"subscriptions": []string{checkoutTopic},
		})
	})

	api := r.Group("/cart")
	{
		api.GET("/:customerId", controller.GetCart)
		api.POST("/:customerId/items", controller.AddItem)
		api.DELETE("/:customerId", controller.DeleteCart)
	}
}
