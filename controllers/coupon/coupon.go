package couponController

import (
	"fitforge/database"
	"fitforge/middleware"
	"fitforge/models"
	"fitforge/services"

	"github.com/gofiber/fiber/v2"
)

// ApplyCoupon validates a code against a batch's price and returns the
// computed discount. No state is mutated; the usage slot is consumed only
// when the payment succeeds.
func ApplyCoupon(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedApplyCoupon").(*struct {
		Code    string `json:"code" validate:"required"`
		BatchID uint   `json:"batch_id" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var batch models.Batch
	if err := database.Database.Db.Where("id = ? AND is_active = ? AND is_deleted = ?", reqData.BatchID, true, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found or not active!", nil)
	}

	coupon, discount, finalAmount, err := services.ValidateCoupon(database.Database.Db, reqData.Code, batch.Price)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coupon applied successfully!", fiber.Map{
		"code":            coupon.Code,
		"discount_type":   coupon.DiscountType,
		"original_amount": batch.Price,
		"discount":        discount,
		"final_amount":    finalAmount,
	})
}
