package models

import "gorm.io/gorm"

// Category has no routes of its own. Products carry the category as a
// free-text string rather than a foreign key.
type Category struct {
	gorm.Model
	Name string `json:"name" binding:"required"`
}
