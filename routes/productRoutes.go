package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nexkart/nexkart-api/controllers"
)

func ProductRoutes(server *gin.Engine) {
	server.POST("/single", controllers.CreateProduct)
	server.GET("/products", controllers.GetProducts)
	server.GET("/products/:productId", controllers.GetProduct)
	server.PUT("/products/:productId", controllers.UpdateProduct)
	server.GET("/products/category/:category", controllers.GetProductsByCategory)
	server.DELETE("/delete/:id", controllers.DeleteProduct)
}
