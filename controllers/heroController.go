package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/nexkart/nexkart-api/initializers"
	"github.com/nexkart/nexkart-api/models"
	"github.com/nexkart/nexkart-api/utils"
	"gorm.io/gorm"
)

const maxHeroImages = 5

func heroDir() string {
	return filepath.Join(UploadsDir(), "hero")
}

// UploadHeroImages stores up to 5 banner images in one request. Filenames
// are generated per file, so colliding original names still yield distinct
// records. The batch is all-or-nothing: any failed save fails the request.
func UploadHeroImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["hero-images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Please upload at least one valid image", nil)
		return
	}
	if len(files) > maxHeroImages {
		respondWithError(ctx, http.StatusBadRequest, "A maximum of 5 hero images can be uploaded at once", nil)
		return
	}

	if err := os.MkdirAll(heroDir(), os.ModePerm); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create upload folder", err)
		return
	}

	var heroImages []models.HeroImage
	for _, file := range files {
		filename := utils.GenerateUploadFilename(file.Filename)
		if err := ctx.SaveUploadedFile(file, filepath.Join(heroDir(), filename)); err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to save hero image", err)
			return
		}
		heroImages = append(heroImages, models.HeroImage{
			Filename:     filename,
			OriginalName: file.Filename,
		})
	}

	if err := initializers.DB.Create(&heroImages).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save hero images", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Hero images uploaded successfully",
		"images":  heroImages,
	})
}

func GetHeroImages(ctx *gin.Context) {
	var heroImages []models.HeroImage
	if err := initializers.DB.Find(&heroImages).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch hero images", err)
		return
	}

	ctx.JSON(http.StatusOK, heroImages)
}

// DeleteHeroImage removes the record for a stored filename and cleans up
// the file on disk so deletes do not leave orphans behind.
func DeleteHeroImage(ctx *gin.Context) {
	filename := ctx.Param("filename")

	var heroImage models.HeroImage
	result := initializers.DB.Where("filename = ?", filename).First(&heroImage)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Hero image not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve hero image", result.Error)
		}
		return
	}

	if err := initializers.DB.Delete(&heroImage).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete hero image", err)
		return
	}

	if err := os.Remove(filepath.Join(heroDir(), heroImage.Filename)); err != nil && !os.IsNotExist(err) {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete hero image file", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Hero image deleted successfully"})
}
