package couponController

import (
	"fitforge/database"
	"fitforge/middleware"
	"fitforge/models"
	"fitforge/services"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCoupon creates a coupon. The code is normalized to uppercase.
func AdminCreateCoupon(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCoupon").(*struct {
		Code          string     `json:"code" validate:"required,min=3,max=32"`
		DiscountType  string     `json:"discount_type" validate:"required,oneof=PERCENTAGE FIXED"`
		DiscountValue uint       `json:"discount_value" validate:"required,gt=0"`
		UsageLimit    *uint      `json:"usage_limit"`
		ExpiresAt     *time.Time `json:"expires_at"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	code := services.NormalizeCouponCode(reqData.Code)

	// Check for duplicate code
	if err := database.Database.Db.Where("code = ?", code).First(&models.Coupon{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Coupon code already exists!", nil)
	}

	coupon := models.Coupon{
		Code:          code,
		DiscountType:  reqData.DiscountType,
		DiscountValue: reqData.DiscountValue,
		UsageLimit:    reqData.UsageLimit,
		ExpiresAt:     reqData.ExpiresAt,
		IsActive:      true,
	}

	if err := database.Database.Db.Create(&coupon).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create coupon!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Coupon created successfully!", coupon)
}

// AdminUpdateCoupon updates a coupon's value, limits and active flag
func AdminUpdateCoupon(c *fiber.Ctx) error {
	couponID := c.Locals("couponID").(int)

	var coupon models.Coupon
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", couponID, false).First(&coupon).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Coupon not found!", nil)
	}

	reqData, ok := c.Locals("validatedCouponUpdate").(*struct {
		DiscountType  string     `json:"discount_type" validate:"omitempty,oneof=PERCENTAGE FIXED"`
		DiscountValue *uint      `json:"discount_value"`
		UsageLimit    *uint      `json:"usage_limit"`
		ExpiresAt     *time.Time `json:"expires_at"`
		IsActive      *bool      `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.DiscountType != "" {
		coupon.DiscountType = reqData.DiscountType
	}
	if reqData.DiscountValue != nil {
		coupon.DiscountValue = *reqData.DiscountValue
	}
	if reqData.UsageLimit != nil {
		coupon.UsageLimit = reqData.UsageLimit
	}
	if reqData.ExpiresAt != nil {
		coupon.ExpiresAt = reqData.ExpiresAt
	}
	if reqData.IsActive != nil {
		coupon.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&coupon).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update coupon!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coupon updated successfully!", coupon)
}

// AdminDeleteCoupon soft deletes a coupon
func AdminDeleteCoupon(c *fiber.Ctx) error {
	couponID := c.Locals("couponID").(int)

	var coupon models.Coupon
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", couponID, false).First(&coupon).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Coupon not found!", nil)
	}

	coupon.IsDeleted = true
	coupon.IsActive = false
	if err := database.Database.Db.Save(&coupon).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete coupon!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coupon deleted successfully!", nil)
}

// AdminGetAllCoupons lists every non-deleted coupon
func AdminGetAllCoupons(c *fiber.Ctx) error {
	var coupons []models.Coupon
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&coupons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch coupons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coupons fetched successfully!", coupons)
}
