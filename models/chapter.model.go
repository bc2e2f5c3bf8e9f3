package models

import "gorm.io/gorm"

// Chapter represents an ordered section within a batch
type Chapter struct {
	gorm.Model
	BatchID     uint   `json:"batch_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // display order within the batch
	IsFree      bool   `json:"is_free" gorm:"default:false"` // derived from the title at write time, see services.IsFreeChapterTitle
	IsDeleted   bool   `gorm:"default:false"`
	Batch       Batch  `json:"-" gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
}
