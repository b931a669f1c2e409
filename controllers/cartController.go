package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nexkart/nexkart-api/initializers"
	"github.com/nexkart/nexkart-api/models"
	"gorm.io/gorm"
)

// AddToCart inserts a fresh cart row for the product. Repeated adds of the
// same product create separate rows, quantities are never merged.
func AddToCart(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	result := initializers.DB.First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", result.Error)
		}
		return
	}

	cartItem := models.CartItem{ProductID: product.ID, Quantity: 1}
	if err := initializers.DB.Create(&cartItem).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to add product to cart", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Product added to cart successfully",
		"id":      cartItem.ID,
	})
}

// GetCart returns every cart row with its product expanded inline.
func GetCart(ctx *gin.Context) {
	var cartItems []models.CartItem
	if err := initializers.DB.Preload("Product").Find(&cartItems).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch cart", err)
		return
	}

	ctx.JSON(http.StatusOK, cartItems)
}

func DeleteCartItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid cart item ID", err)
		return
	}

	result := initializers.DB.Delete(&models.CartItem{}, itemId)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete cart item", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Cart item not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted from cart successfully"})
}
