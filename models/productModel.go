package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string         `json:"name" binding:"required"`
	Price       float64        `json:"price" binding:"required"`
	Brand       string         `json:"brand"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Attributes  datatypes.JSON `json:"attributes,omitempty"`
}

// ProductUpdate is the whitelist of fields a PUT may change. Pointers
// distinguish "absent" from zero values so partial updates stay partial.
type ProductUpdate struct {
	Name        *string         `json:"name"`
	Price       *float64        `json:"price"`
	Brand       *string         `json:"brand"`
	Category    *string         `json:"category"`
	Description *string         `json:"description"`
	Image       *string         `json:"image"`
	Attributes  *datatypes.JSON `json:"attributes"`
}
