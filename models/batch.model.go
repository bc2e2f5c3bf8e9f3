package models

import "gorm.io/gorm"

// Batch represents a purchasable training program
type Batch struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       uint   `json:"price" gorm:"default:0"` // whole currency units
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active" gorm:"default:true"` // soft-disable instead of deletion
	IsDeleted   bool   `gorm:"default:false"`
}
