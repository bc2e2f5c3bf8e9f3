package enrollmentValidator

import (
	"fitforge/middleware"
	"strconv"
	"strings"

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

// Checkout validates the batch ID parameter and the optional coupon body
func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		batchIDStr := strings.TrimSpace(c.Params("id"))
		if batchIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Batch ID is required!", nil)
		}

		batchID, err := strconv.Atoi(batchIDStr)
		if err != nil || batchID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Batch ID!", nil)
		}

		c.Locals("batchID", batchID)

		// Body is optional; checkout without a coupon sends none
		if len(c.Body()) > 0 {
			reqData := new(struct {
				CouponCode string `json:"coupon_code"`
			})
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
			c.Locals("validatedCheckout", reqData)
		}

		return c.Next()
	}
}

// PaymentCallback validates the gateway callback payload
func PaymentCallback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EnrollmentID uint   `json:"enrollment_id" validate:"required"`
			Status       string `json:"status" validate:"required,oneof=SUCCESS FAILED"`
			OrderID      string `json:"order_id"`
			PaymentRef   string `json:"payment_ref"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedCallback", reqData)
		return c.Next()
	}
}

// EnrollmentList validates optional pagination query parameters
func EnrollmentList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// No pagination requested; the controller fetches everything
		if c.Query("page") == "" && c.Query("limit") == "" {
			return c.Next()
		}

		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		// Validate Page
		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		// Validate Limit
		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollmentList", reqData)
		return c.Next()
	}
}

// Grant validates the admin comp-access payload
func Grant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID  uint `json:"user_id" validate:"required"`
			BatchID uint `json:"batch_id" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedGrant", reqData)
		return c.Next()
	}
}

// EnrollmentID validates the enrollment ID route parameter
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("enrollment_id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		c.Locals("enrollmentID", id)
		return c.Next()
	}
}
