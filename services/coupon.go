package services

import (
	"errors"
	"strings"
	"time"

	"fitforge/models"

	"gorm.io/gorm"
)

// Coupon validation failures surfaced to the user
var (
	ErrCouponInvalid      = errors.New("invalid or expired coupon")
	ErrCouponExpired      = errors.New("coupon has expired")
	ErrCouponLimitReached = errors.New("coupon usage limit reached")
)

// NormalizeCouponCode uppercases a code. Applied on both write and read so
// lookups are case-insensitive.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ComputeDiscount computes the discount a coupon grants on originalAmount,
// clamped so the final amount never goes negative.
func ComputeDiscount(coupon *models.Coupon, originalAmount uint) (discount uint, finalAmount uint) {
	if coupon.DiscountType == models.DiscountTypePercentage {
		discount = originalAmount * coupon.DiscountValue / 100
	} else {
		discount = coupon.DiscountValue
	}

	// Clamp: discount can never exceed the price
	if discount > originalAmount {
		discount = originalAmount
	}

	return discount, originalAmount - discount
}

// ValidateCoupon looks up a code and checks active flag, expiry and usage
// limit. Read-only: the usage counter is only consumed at payment success via
// RedeemCoupon, so an abandoned checkout does not burn a slot.
func ValidateCoupon(db *gorm.DB, code string, originalAmount uint) (*models.Coupon, uint, uint, error) {
	var coupon models.Coupon
	if err := db.Where("code = ? AND is_active = ? AND is_deleted = ?", NormalizeCouponCode(code), true, false).
		First(&coupon).Error; err != nil {
		return nil, 0, originalAmount, ErrCouponInvalid
	}

	if coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(time.Now()) {
		return nil, 0, originalAmount, ErrCouponExpired
	}

	if coupon.UsageLimit != nil && coupon.UsageCount >= *coupon.UsageLimit {
		return nil, 0, originalAmount, ErrCouponLimitReached
	}

	discount, finalAmount := ComputeDiscount(&coupon, originalAmount)
	return &coupon, discount, finalAmount, nil
}

// RedeemCoupon consumes one usage slot. The limit check and the increment are
// a single conditional UPDATE so two concurrent redemptions of a
// near-exhausted coupon cannot both get through.
func RedeemCoupon(db *gorm.DB, code string) error {
	result := db.Model(&models.Coupon{}).
		Where("code = ? AND is_active = ? AND is_deleted = ?", NormalizeCouponCode(code), true, false).
		Where("usage_limit IS NULL OR usage_count < usage_limit").
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCouponLimitReached
	}
	return nil
}
