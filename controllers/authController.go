package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexkart/nexkart-api/initializers"
	"github.com/nexkart/nexkart-api/models"
)

const (
	// Standard response messages
	msgInvalidInput        = "invalid input"
	msgUserAlreadyExists   = "user already exists"
	msgInvalidCredentials  = "invalid credentials"
	msgInternalServerError = "Internal server error"
	msgUserCreated         = "User created successfully"
	msgLoginSuccessful     = "Login successful"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func checkUserExists(id, email string) (bool, error) {
	var existingUser models.User
	result := initializers.DB.Where("user_id = ? OR email = ?", id, email).Find(&existingUser)
	return result.RowsAffected > 0, result.Error
}

func findUserByIdentifier(identifier string) (models.User, error) {
	var user models.User
	result := initializers.DB.Where("user_id = ? OR email = ?", identifier, identifier).First(&user)
	return user, result.Error
}

// Signup handles user registration. Passwords are stored exactly as
// supplied so login stays a byte-for-byte comparison; utils.HashPassword
// exists for the day that contract changes.
func Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	exists, err := checkUserExists(signUpData.ID, signUpData.Email)
	if err != nil {
		log.Println("Database error during user check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	user := models.User{
		UserID:   signUpData.ID,
		Name:     signUpData.Name,
		Password: signUpData.Password,
		Email:    signUpData.Email,
	}

	if result := initializers.DB.Create(&user); result.Error != nil {
		log.Println("User creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserCreated})
}

// Login authenticates against a stored id or email. No session token or
// cookie is issued, success is just an acknowledgement.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByIdentifier(loginData.ID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	// Case-sensitive, no normalization.
	if user.Password != loginData.Password {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLoginSuccessful})
}

// GetUsers lists all users. The password column never leaves the store
// here, the model redacts it from every JSON read path.
func GetUsers(ctx *gin.Context) {
	var users []models.User
	if err := initializers.DB.Find(&users).Error; err != nil {
		log.Println("Database error fetching users:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, users)
}
