package models

import "gorm.io/gorm"

// User's password is never serialized on read paths.
type User struct {
	gorm.Model
	UserID   string `json:"id" gorm:"uniqueIndex;size:191"`
	Name     string `json:"name"`
	Password string `json:"-"`
	Email    string `json:"email" gorm:"uniqueIndex;size:191"`
}

type SignupData struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type LoginData struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}
