package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon discount types
const (
	DiscountTypePercentage = "PERCENTAGE"
	DiscountTypeFixed      = "FIXED"
)

// Coupon is a discount code. Codes are normalized to uppercase on write and read.
type Coupon struct {
	gorm.Model
	Code          string     `json:"code" gorm:"unique;not null"`
	DiscountType  string     `json:"discount_type" gorm:"default:'PERCENTAGE'"` // PERCENTAGE, FIXED
	DiscountValue uint       `json:"discount_value" gorm:"default:0"`
	UsageLimit    *uint      `json:"usage_limit"`                   // nil means unlimited
	UsageCount    uint       `json:"usage_count" gorm:"default:0"`  // must never exceed UsageLimit when set
	ExpiresAt     *time.Time `json:"expires_at"`                    // nil means no expiry
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	IsDeleted     bool       `gorm:"default:false"`
}
