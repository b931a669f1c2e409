package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nexkart/nexkart-api/controllers"
)

func CartRoutes(server *gin.Engine) {
	server.POST("/cart/add/:productId", controllers.AddToCart)
	server.GET("/cart", controllers.GetCart)
	server.DELETE("/cart/delete/:itemId", controllers.DeleteCartItem)
}
