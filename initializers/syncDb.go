package initializers

import (
	"log"

	"github.com/nexkart/nexkart-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.CartItem{}, &models.HeroImage{})
	log.Println("Database synced successfully.")
}
