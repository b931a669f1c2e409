package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nexkart/nexkart-api/controllers"
)

func AuthRoutes(server *gin.Engine) {
	server.POST("/signup", controllers.Signup)
	server.POST("/login", controllers.Login)
	server.GET("/users", controllers.GetUsers)
}
