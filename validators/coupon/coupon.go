package couponValidator

import (
	"fitforge/middleware"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func validationErrors(err error) map[string]string {
	errors := make(map[string]string)
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range fieldErrors {
			errors[fieldError.Field()] = "Failed on rule: " + fieldError.Tag()
		}
	}
	return errors
}

// ApplyCoupon validates the code + batch payload
func ApplyCoupon() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Code    string `json:"code" validate:"required"`
			BatchID uint   `json:"batch_id" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedApplyCoupon", reqData)
		return c.Next()
	}
}

// CreateCoupon validates a new coupon definition
func CreateCoupon() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Code          string     `json:"code" validate:"required,min=3,max=32"`
			DiscountType  string     `json:"discount_type" validate:"required,oneof=PERCENTAGE FIXED"`
			DiscountValue uint       `json:"discount_value" validate:"required,gt=0"`
			UsageLimit    *uint      `json:"usage_limit"`
			ExpiresAt     *time.Time `json:"expires_at"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedCoupon", reqData)
		return c.Next()
	}
}

// UpdateCoupon validates a coupon edit
func UpdateCoupon() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			DiscountType  string     `json:"discount_type" validate:"omitempty,oneof=PERCENTAGE FIXED"`
			DiscountValue *uint      `json:"discount_value"`
			UsageLimit    *uint      `json:"usage_limit"`
			ExpiresAt     *time.Time `json:"expires_at"`
			IsActive      *bool      `json:"is_active"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedCouponUpdate", reqData)
		return c.Next()
	}
}

// CouponID validates the coupon ID route parameter
func CouponID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Coupon ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Coupon ID!", nil)
		}

		c.Locals("couponID", id)
		return c.Next()
	}
}
