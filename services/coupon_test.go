package services

import (
	"errors"
	"testing"
	"time"

	"fitforge/models"
)

func TestComputeDiscount(t *testing.T) {
	tests := []struct {
		name           string
		discountType   string
		discountValue  uint
		originalAmount uint
		wantDiscount   uint
		wantFinal      uint
	}{
		{"20 percent of 1000", models.DiscountTypePercentage, 20, 1000, 200, 800},
		{"100 percent", models.DiscountTypePercentage, 100, 1500, 1500, 0},
		{"percentage rounds down", models.DiscountTypePercentage, 33, 100, 33, 67},
		{"fixed below price", models.DiscountTypeFixed, 500, 2000, 500, 1500},
		{"fixed clamped to price", models.DiscountTypeFixed, 500, 300, 300, 0},
		{"fixed equal to price", models.DiscountTypeFixed, 300, 300, 300, 0},
		{"zero value coupon", models.DiscountTypeFixed, 0, 1000, 0, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coupon := &models.Coupon{DiscountType: tt.discountType, DiscountValue: tt.discountValue}
			discount, final := ComputeDiscount(coupon, tt.originalAmount)
			if discount != tt.wantDiscount || final != tt.wantFinal {
				t.Errorf("ComputeDiscount(%s %d, %d) = (%d, %d), want (%d, %d)",
					tt.discountType, tt.discountValue, tt.originalAmount, discount, final, tt.wantDiscount, tt.wantFinal)
			}
		})
	}
}

func TestNormalizeCouponCode(t *testing.T) {
	if got := NormalizeCouponCode("  launch50 "); got != "LAUNCH50" {
		t.Errorf("NormalizeCouponCode = %q, want LAUNCH50", got)
	}
}

func TestValidateCoupon(t *testing.T) {
	db := setupTestDB(t)

	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)
	limit := uint(5)

	coupons := []models.Coupon{
		{Code: "LAUNCH20", DiscountType: models.DiscountTypePercentage, DiscountValue: 20, IsActive: true},
		{Code: "EXPIRED", DiscountType: models.DiscountTypeFixed, DiscountValue: 100, IsActive: true, ExpiresAt: &past},
		{Code: "FRESH", DiscountType: models.DiscountTypeFixed, DiscountValue: 100, IsActive: true, ExpiresAt: &future},
		{Code: "EXHAUSTED", DiscountType: models.DiscountTypeFixed, DiscountValue: 100, IsActive: true, UsageLimit: &limit, UsageCount: 5},
		{Code: "DISABLED", DiscountType: models.DiscountTypeFixed, DiscountValue: 100},
	}
	for i := range coupons {
		if err := db.Create(&coupons[i]).Error; err != nil {
			t.Fatalf("seeding coupon: %v", err)
		}
	}
	// IsActive carries a DB-side default of true, so flipping it off needs an
	// explicit update rather than a zero value on insert
	if err := db.Model(&models.Coupon{}).Where("code = ?", "DISABLED").Update("is_active", false).Error; err != nil {
		t.Fatalf("disabling coupon: %v", err)
	}

	t.Run("valid percentage coupon", func(t *testing.T) {
		coupon, discount, final, err := ValidateCoupon(db, "launch20", 1000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if coupon.Code != "LAUNCH20" || discount != 200 || final != 800 {
			t.Errorf("got (%s, %d, %d), want (LAUNCH20, 200, 800)", coupon.Code, discount, final)
		}
	})

	t.Run("unexpired coupon passes", func(t *testing.T) {
		if _, _, _, err := ValidateCoupon(db, "FRESH", 1000); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		_, discount, final, err := ValidateCoupon(db, "NOPE", 1000)
		if !errors.Is(err, ErrCouponInvalid) {
			t.Errorf("error = %v, want ErrCouponInvalid", err)
		}
		if discount != 0 || final != 1000 {
			t.Errorf("amounts changed on rejection: discount=%d final=%d", discount, final)
		}
	})

	t.Run("inactive coupon", func(t *testing.T) {
		if _, _, _, err := ValidateCoupon(db, "DISABLED", 1000); !errors.Is(err, ErrCouponInvalid) {
			t.Errorf("error = %v, want ErrCouponInvalid", err)
		}
	})

	t.Run("expired coupon", func(t *testing.T) {
		_, discount, final, err := ValidateCoupon(db, "EXPIRED", 1000)
		if !errors.Is(err, ErrCouponExpired) {
			t.Errorf("error = %v, want ErrCouponExpired", err)
		}
		if discount != 0 || final != 1000 {
			t.Errorf("amounts changed on rejection: discount=%d final=%d", discount, final)
		}
	})

	t.Run("usage limit reached", func(t *testing.T) {
		if _, _, _, err := ValidateCoupon(db, "EXHAUSTED", 1000); !errors.Is(err, ErrCouponLimitReached) {
			t.Errorf("error = %v, want ErrCouponLimitReached", err)
		}
	})
}

func TestRedeemCoupon(t *testing.T) {
	db := setupTestDB(t)

	limit := uint(2)
	coupon := models.Coupon{Code: "TIGHT", DiscountType: models.DiscountTypeFixed, DiscountValue: 50, IsActive: true, UsageLimit: &limit}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("seeding coupon: %v", err)
	}

	// Two redemptions fit the limit
	for i := 0; i < 2; i++ {
		if err := RedeemCoupon(db, "TIGHT"); err != nil {
			t.Fatalf("redeem %d failed: %v", i+1, err)
		}
	}

	// The conditional update refuses the third
	if err := RedeemCoupon(db, "TIGHT"); !errors.Is(err, ErrCouponLimitReached) {
		t.Errorf("error = %v, want ErrCouponLimitReached", err)
	}

	var reloaded models.Coupon
	if err := db.Where("code = ?", "TIGHT").First(&reloaded).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.UsageCount != 2 {
		t.Errorf("usage_count = %d, want 2 (never past the limit)", reloaded.UsageCount)
	}
}

func TestRedeemCouponUnlimited(t *testing.T) {
	db := setupTestDB(t)

	coupon := models.Coupon{Code: "OPEN", DiscountType: models.DiscountTypeFixed, DiscountValue: 50, IsActive: true}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("seeding coupon: %v", err)
	}

	for i := 0; i < 10; i++ {
		if err := RedeemCoupon(db, "OPEN"); err != nil {
			t.Fatalf("redeem %d failed: %v", i+1, err)
		}
	}

	var reloaded models.Coupon
	db.Where("code = ?", "OPEN").First(&reloaded)
	if reloaded.UsageCount != 10 {
		t.Errorf("usage_count = %d, want 10", reloaded.UsageCount)
	}
}
