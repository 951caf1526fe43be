package product

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册商品相关路由
func RegisterRoutes(r gin.IRouter, handler *ProductHandler) {
	r.GET("/generate-products", handler.GenerateProducts)

	products := r.Group("/products")
	{
		products.GET("", handler.ListProducts)
		products.GET("/search", handler.SearchProducts)
		products.GET("/:id", handler.GetProduct)
	}
}
