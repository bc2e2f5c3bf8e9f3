package enrollmentController

import (
	"errors"
	"fitforge/config"
	"fitforge/database"
	"fitforge/middleware"
	"fitforge/models"
	"fitforge/services"
	"fitforge/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// InitiateCheckout validates an optional coupon, upserts a PENDING enrollment
// and creates a gateway order. When the gateway is not configured the response
// switches to the static QR flow.
func InitiateCheckout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	batchID := c.Locals("batchID").(int)

	// Check if batch exists and is active
	var batch models.Batch
	if err := database.Database.Db.Where("id = ? AND is_active = ? AND is_deleted = ?", batchID, true, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found or not active!", nil)
	}

	reqData, _ := c.Locals("validatedCheckout").(*struct {
		CouponCode string `json:"coupon_code"`
	})

	originalAmount := batch.Price
	discountAmount := uint(0)
	finalAmount := originalAmount
	couponCode := ""

	// Coupon validation is read-only; the slot is consumed at payment success
	if reqData != nil && reqData.CouponCode != "" {
		coupon, discount, final, err := services.ValidateCoupon(database.Database.Db, reqData.CouponCode, originalAmount)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		couponCode = coupon.Code
		discountAmount = discount
		finalAmount = final
	}

	enrollment, err := services.InitiateEnrollment(database.Database.Db, userID, batch.ID, couponCode, originalAmount, discountAmount, finalAmount)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyEnrolled) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this batch!", nil)
		}
		log.Printf("Error initiating enrollment for user %d batch %d: %v", userID, batch.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start checkout!", nil)
	}

	receipt := "rcpt-" + uuid.NewString()
	order, err := utils.CreatePaymentOrder(finalAmount, receipt)
	if err != nil {
		if errors.Is(err, utils.ErrGatewayNotConfigured) {
			// QR fallback: payment is collected out-of-band, callback comes later
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout started! Pay via QR to complete enrollment.", fiber.Map{
				"enrollment":   enrollment,
				"payment_mode": "QR",
				"qr_image_url": config.AppConfig.PaymentQRImage,
			})
		}
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment gateway unavailable, please retry!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout started!", fiber.Map{
		"enrollment":   enrollment,
		"payment_mode": "GATEWAY",
		"order":        order,
	})
}

// PaymentCallback handles the gateway's success/failure result for an
// enrollment. Success marks the row PAID; failure marks it FAILED and the
// user may re-attempt checkout.
func PaymentCallback(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCallback").(*struct {
		EnrollmentID uint   `json:"enrollment_id" validate:"required"`
		Status       string `json:"status" validate:"required,oneof=SUCCESS FAILED"`
		OrderID      string `json:"order_id"`
		PaymentRef   string `json:"payment_ref"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// The callback must belong to the caller's own enrollment
	var enrollment models.Enrollment
	if err := database.Database.Db.Where("id = ?", reqData.EnrollmentID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}
	if enrollment.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enrollment does not belong to this user!", nil)
	}

	if reqData.Status != "SUCCESS" {
		if _, err := services.MarkEnrollmentFailed(database.Database.Db, enrollment.ID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment result!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment failed. You can retry checkout anytime.", nil)
	}

	// Best-effort double check with the gateway; a verification hiccup after
	// the user has been charged must not turn into a payment failure
	if reqData.OrderID != "" {
		if status, err := utils.FetchPaymentStatus(reqData.OrderID); err == nil && status != "" && status != "paid" && status != "captured" {
			log.Printf("[PAYMENT] Gateway reports order %s as %q for enrollment %d, flagging for reconciliation",
				reqData.OrderID, status, enrollment.ID)
		}
	}

	paymentRef := reqData.PaymentRef
	if paymentRef == "" {
		paymentRef = reqData.OrderID
	}

	paid, err := services.MarkEnrollmentPaid(database.Database.Db, enrollment.ID, paymentRef)
	if err != nil {
		// The user has been charged; never present this as a payment failure
		log.Printf("[PAYMENT] Enrollment %d update failed after gateway success (ref %s): %v", enrollment.ID, paymentRef, err)
		return middleware.JsonResponse(c, fiber.StatusOK, true,
			"Payment received! Enrollment confirmation is delayed, contact support with reference "+paymentRef+".", fiber.Map{
				"payment_ref": paymentRef,
			})
	}

	// Receipt email off the request path
	go func(e models.Enrollment) {
		var user models.User
		var batch models.Batch
		if err := database.Database.Db.Where("id = ?", e.UserID).First(&user).Error; err != nil {
			return
		}
		if err := database.Database.Db.Where("id = ?", e.BatchID).First(&batch).Error; err != nil {
			return
		}
		if err := utils.SendPaymentReceipt(user.Email, user.FullName, batch.Title, e.FinalAmount, e.PaymentRef); err != nil {
			log.Printf("[PAYMENT] Failed to send receipt for enrollment %d: %v", e.ID, err)
		}
	}(*paid)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment successful! You are enrolled.", paid)
}

// GetUserEnrollments lists the caller's enrollments for the dashboard
func GetUserEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Retrieve validated pagination request
	reqData, ok := c.Locals("validatedEnrollmentList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		// Fetch all enrollments without pagination
		var enrollments []models.Enrollment
		if err := database.Database.Db.Where("user_id = ?", userID).Preload("Batch").Order("created_at desc").Find(&enrollments).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
		}
		response := map[string]interface{}{
			"enrollments": enrollments,
			"pagination": map[string]interface{}{
				"total": int64(len(enrollments)),
				"page":  1,
				"limit": len(enrollments),
			},
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", response)
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	var enrollments []models.Enrollment
	db := database.Database.Db.Model(&models.Enrollment{}).Where("user_id = ?", userID).Preload("Batch")

	// Get total count
	var total int64
	db.Count(&total)

	// Fetch paginated data
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	response := map[string]interface{}{
		"enrollments": enrollments,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", response)
}
