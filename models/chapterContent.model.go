package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ChapterContent represents one playable video unit within a chapter
type ChapterContent struct {
	gorm.Model
	ChapterID   uint           `json:"chapter_id" gorm:"index;not null"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	VideoURL    string         `json:"video_url"` // external video reference
	Tags        datatypes.JSON `json:"tags"`      // array of strings
	OrderIndex  int            `json:"order_index" gorm:"default:0"`
	IsDeleted   bool           `gorm:"default:false"`
	Chapter     Chapter        `json:"-" gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE"`
}
