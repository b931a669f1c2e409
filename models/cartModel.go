package models

import "gorm.io/gorm"

// CartItem is one row per add-to-cart call. Adding the same product twice
// creates two rows rather than bumping the quantity.
type CartItem struct {
	gorm.Model
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity" gorm:"default:1"`
	Product   Product `json:"product" gorm:"foreignKey:ProductID"`
}
