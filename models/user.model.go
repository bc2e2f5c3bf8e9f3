package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FullName  string    `json:"full_name" gorm:"default:''"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Mobile    string    `json:"mobile" gorm:"default:''"`
	Password  string    `json:"-" gorm:"not null"`
	State     string    `json:"state"`
	City      string    `json:"city"`
	IsAdmin   bool      `json:"is_admin" gorm:"default:false"` // sole authorization signal for admin capability
	LastLogin time.Time `json:"last_login" gorm:"default:NULL"`
	IsDeleted bool      `gorm:"default:false"`
}
