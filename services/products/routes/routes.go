package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vedantpatel1997/dapr-storefront/services/products/catalog"
	"github.com/vedantpatel1997/dapr-storefront/services/products/controllers"
)

func RegisterProductRoutes(r *gin.Engine) {
	controller := controllers.NewProductsController()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"appId":   "products-service",
			"message": "Products microservice is running",
			"count":   len(catalog.List()),
		})
	})

	r.GET("/products", controller.ListProducts)
	r.GET("/products/:id", controller.GetProduct)
}
