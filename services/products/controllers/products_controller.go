package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vedantpatel1997/dapr-storefront/services/products/catalog"
)

type ProductsController struct{}

func NewProductsController() *ProductsController {
	return &ProductsController{}
}

func (pc *ProductsController) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.List())
}

func (pc *ProductsController) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, ok := catalog.Find(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found", "productId": id})
		return
	}

	c.JSON(http.StatusOK, product)
}
