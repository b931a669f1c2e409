package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Nexkart API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/signup" - Create user account
- POST "/login" - Access user account
- GET "/users" - List user accounts

PRODUCT
- POST "/single" - Create product with a single image upload
- GET "/products" - Get all products (filter with ?category= and ?brand=)
- GET "/products/{productId}" - Get product by ID
- PUT "/products/{productId}" - Update product fields
- GET "/products/category/{category}" - Get products in a category
- DELETE "/delete/{id}" - Delete product by ID

CART
- POST "/cart/add/{productId}" - Add a product to the cart
- GET "/cart" - Get cart items with product details
- DELETE "/cart/delete/{itemId}" - Remove a cart item

HERO
- POST "/hero" - Upload up to 5 hero images
- GET "/hero" - Get all hero images
- DELETE "/hero/{filename}" - Delete a hero image`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
