package models

import "gorm.io/gorm"

type HeroImage struct {
	gorm.Model
	Filename     string `json:"filename" gorm:"uniqueIndex;size:191"`
	OriginalName string `json:"originalname"`
}
