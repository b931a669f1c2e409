package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nexkart/nexkart-api/controllers"
)

func HeroRoutes(server *gin.Engine) {
	server.POST("/hero", controllers.UploadHeroImages)
	server.GET("/hero", controllers.GetHeroImages)
	server.DELETE("/hero/:filename", controllers.DeleteHeroImage)
}
