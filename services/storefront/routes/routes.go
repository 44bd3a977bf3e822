package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vedantpatel1997/dapr-storefront/services/storefront/clients"
	"github.com/vedantpatel1997/dapr-storefront/services/storefront/controllers"
)

func RegisterStorefrontRoutes(r *gin.Engine, downstream *clients.Downstream) {
	controller := controllers.NewStorefrontController(downstream)

	r.GET("/healthz", controller.Health)
	r.GET("/products", controller.GetProducts)
	r.GET("/cart/:customerId", controller.GetCart)
	r.POST("/cart/:customerId/items", controller.AddCartItem)
	r.POST("/checkout/:customerId", controller.Checkout)
	r.GET("/orders/:orderId", controller.GetOrder)
}
