package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment payment statuses
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
	PaymentStatusFailed  = "FAILED"
)

// Enrollment tracks a user's paid relationship to a batch.
// One row per (user, batch); re-initiating checkout overwrites it.
type Enrollment struct {
	gorm.Model
	UserID         uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_batch"`
	BatchID        uint       `json:"batch_id" gorm:"not null;uniqueIndex:idx_enrollment_user_batch"`
	PaymentStatus  string     `json:"payment_status" gorm:"default:'PENDING'"` // PENDING, PAID, FAILED
	EnrolledAt     *time.Time `json:"enrolled_at"`
	PaymentRef     string     `json:"payment_ref"` // external payment reference
	CouponCode     string     `json:"coupon_code"` // coupon applied at checkout, redeemed on success
	OriginalAmount uint       `json:"original_amount" gorm:"default:0"`
	DiscountAmount uint       `json:"discount_amount" gorm:"default:0"`
	FinalAmount    uint       `json:"final_amount" gorm:"default:0"`
	ReminderSent   bool       `json:"reminder_sent" gorm:"default:false"`
	User           User       `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Batch          Batch      `json:"batch" gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
}
