package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nexkart/nexkart-api/initializers"
	"github.com/nexkart/nexkart-api/models"
	"github.com/nexkart/nexkart-api/utils"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// UploadsDir resolves the local directory uploaded files are written to.
func UploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// CreateProduct handles the multipart product-create upload. The stored
// filename is generated, never the client's original name, so concurrent
// uploads of "photo.jpg" cannot overwrite each other.
func CreateProduct(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Please upload a valid image", err)
		return
	}

	name := ctx.PostForm("name")
	if name == "" {
		respondWithError(ctx, http.StatusBadRequest, "Product name is required", nil)
		return
	}

	price, err := strconv.ParseFloat(ctx.PostForm("price"), 64)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid price", err)
		return
	}

	if err := os.MkdirAll(UploadsDir(), os.ModePerm); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create upload folder", err)
		return
	}

	filename := utils.GenerateUploadFilename(file.Filename)
	if err := ctx.SaveUploadedFile(file, filepath.Join(UploadsDir(), filename)); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save image", err)
		return
	}

	product := models.Product{
		Name:        name,
		Price:       price,
		Brand:       ctx.PostForm("brand"),
		Category:    ctx.PostForm("category"),
		Description: ctx.PostForm("description"),
		Image:       filename,
	}

	if err := initializers.DB.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	// Optional mirror slot on object storage. A presign failure is logged
	// and the upload still succeeds, the local copy is authoritative.
	presignedPost, err := utils.GeneratePresignedPost(ctx.Request.Context(), "products/"+filename, file.Header.Get("Content-Type"))
	if err != nil {
		log.Println("Presign error:", err)
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"file": gin.H{
			"filename":     filename,
			"originalname": file.Filename,
			"size":         file.Size,
		},
		"product":       product,
		"presignedPost": presignedPost,
	})
}

// GetProducts lists the catalog, optionally narrowed by exact category
// and/or brand. Both filters are trimmed and combined with AND.
func GetProducts(ctx *gin.Context) {
	query := initializers.DB.Model(&models.Product{})

	if category := strings.TrimSpace(ctx.Query("category")); category != "" {
		query = query.Where("category = ?", category)
	}
	if brand := strings.TrimSpace(ctx.Query("brand")); brand != "" {
		query = query.Where("brand = ?", brand)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func GetProduct(ctx *gin.Context) {
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
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// UpdateProduct merges an explicit whitelist of mutable fields into the
// record. Unknown body fields are ignored rather than written through.
func UpdateProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var payload models.ProductUpdate
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var product models.Product
	result := initializers.DB.First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	updates := map[string]any{}
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.Price != nil {
		updates["price"] = *payload.Price
	}
	if payload.Brand != nil {
		updates["brand"] = *payload.Brand
	}
	if payload.Category != nil {
		updates["category"] = *payload.Category
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if payload.Image != nil {
		updates["image"] = *payload.Image
	}
	if payload.Attributes != nil {
		updates["attributes"] = *payload.Attributes
	}

	if len(updates) > 0 {
		if err := initializers.DB.Model(&product).Updates(updates).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
			return
		}
	}

	ctx.JSON(http.StatusOK, product)
}

// GetProductsByCategory serves the category lookup on its own path so it
// cannot collide with the by-ID route.
func GetProductsByCategory(ctx *gin.Context) {
	var products []models.Product
	if err := initializers.DB.Where("category = ?", ctx.Param("category")).Find(&products).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func DeleteProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	result := initializers.DB.Delete(&models.Product{}, productId)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
