package services

import (
	"errors"
	"log"
	"time"

	"fitforge/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// State machine failures surfaced to the caller
var (
	ErrAlreadyEnrolled    = errors.New("already enrolled in this batch")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)

// InitiateEnrollment upserts a PENDING enrollment for (user, batch). Keyed on
// the unique (user_id, batch_id) index, so re-initiating an abandoned or
// failed checkout overwrites the row instead of duplicating it. A PAID row is
// never overwritten; callers get ErrAlreadyEnrolled.
func InitiateEnrollment(db *gorm.DB, userID, batchID uint, couponCode string, originalAmount, discountAmount, finalAmount uint) (*models.Enrollment, error) {
	// Refuse to re-initiate over a paid enrollment
	var existing models.Enrollment
	if err := db.Where("user_id = ? AND batch_id = ?", userID, batchID).First(&existing).Error; err == nil {
		if existing.PaymentStatus == models.PaymentStatusPaid {
			return nil, ErrAlreadyEnrolled
		}
	}

	enrollment := models.Enrollment{
		UserID:         userID,
		BatchID:        batchID,
		PaymentStatus:  models.PaymentStatusPending,
		CouponCode:     couponCode,
		OriginalAmount: originalAmount,
		DiscountAmount: discountAmount,
		FinalAmount:    finalAmount,
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "batch_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"payment_status":  models.PaymentStatusPending,
			"coupon_code":     couponCode,
			"original_amount": originalAmount,
			"discount_amount": discountAmount,
			"final_amount":    finalAmount,
			"enrolled_at":     nil,
			"payment_ref":     "",
			"reminder_sent":   false,
			"updated_at":      time.Now(),
		}),
	}).Create(&enrollment).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the upsert-updated row carries its real ID
	if err := db.Where("user_id = ? AND batch_id = ?", userID, batchID).First(&enrollment).Error; err != nil {
		return nil, err
	}

	publishEnrollmentEvent(EventEnrollmentInitiated, enrollment.ID, userID, batchID, enrollment.PaymentStatus)
	return &enrollment, nil
}

// MarkEnrollmentPaid transitions an enrollment to PAID, stamping enrolled_at
// and the gateway reference. If a coupon was applied at checkout its counter
// is consumed best-effort: a redeem failure is logged for reconciliation and
// never rolls back the paid transition, because the user has been charged.
func MarkEnrollmentPaid(db *gorm.DB, enrollmentID uint, paymentRef string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		return nil, ErrEnrollmentNotFound
	}

	now := time.Now()
	enrollment.PaymentStatus = models.PaymentStatusPaid
	enrollment.EnrolledAt = &now
	enrollment.PaymentRef = paymentRef

	if err := db.Save(&enrollment).Error; err != nil {
		return nil, err
	}

	// Coupon bookkeeping after the payment is already recorded
	if enrollment.CouponCode != "" {
		if err := RedeemCoupon(db, enrollment.CouponCode); err != nil {
			log.Printf("[PAYMENT] Coupon %s redeem failed for enrollment %d (ref %s), needs manual reconciliation: %v",
				enrollment.CouponCode, enrollment.ID, paymentRef, err)
		}
	}

	publishEnrollmentEvent(EventEnrollmentPaid, enrollment.ID, enrollment.UserID, enrollment.BatchID, enrollment.PaymentStatus)
	return &enrollment, nil
}

// MarkEnrollmentFailed transitions an enrollment to FAILED. The user may
// re-attempt checkout, which re-enters PENDING via InitiateEnrollment.
func MarkEnrollmentFailed(db *gorm.DB, enrollmentID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		return nil, ErrEnrollmentNotFound
	}

	enrollment.PaymentStatus = models.PaymentStatusFailed
	if err := db.Save(&enrollment).Error; err != nil {
		return nil, err
	}

	publishEnrollmentEvent(EventEnrollmentFailed, enrollment.ID, enrollment.UserID, enrollment.BatchID, enrollment.PaymentStatus)
	return &enrollment, nil
}

// GrantEnrollment upserts a PAID enrollment directly, bypassing payment.
// Admin-only; used for comping access.
func GrantEnrollment(db *gorm.DB, userID, batchID uint) (*models.Enrollment, error) {
	now := time.Now()
	ref := "COMP-" + uuid.NewString()

	enrollment := models.Enrollment{
		UserID:        userID,
		BatchID:       batchID,
		PaymentStatus: models.PaymentStatusPaid,
		EnrolledAt:    &now,
		PaymentRef:    ref,
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "batch_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"payment_status": models.PaymentStatusPaid,
			"enrolled_at":    now,
			"payment_ref":    ref,
			"updated_at":     now,
		}),
	}).Create(&enrollment).Error
	if err != nil {
		return nil, err
	}

	if err := db.Where("user_id = ? AND batch_id = ?", userID, batchID).First(&enrollment).Error; err != nil {
		return nil, err
	}

	publishEnrollmentEvent(EventEnrollmentGranted, enrollment.ID, userID, batchID, enrollment.PaymentStatus)
	return &enrollment, nil
}

// RevokeEnrollment hard deletes an enrollment row. Admin-only.
func RevokeEnrollment(db *gorm.DB, enrollmentID uint) error {
	var enrollment models.Enrollment
	if err := db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		return ErrEnrollmentNotFound
	}

	if err := db.Unscoped().Delete(&enrollment).Error; err != nil {
		return err
	}

	publishEnrollmentEvent(EventEnrollmentRevoked, enrollment.ID, enrollment.UserID, enrollment.BatchID, "")
	return nil
}

// IsUserEnrolled reports whether a PAID enrollment exists for (user, batch).
// Any lookup error reads as not enrolled, so missing or denied data degrades
// to the paywall instead of an error screen.
func IsUserEnrolled(db *gorm.DB, userID, batchID uint) bool {
	if userID == 0 {
		return false
	}
	var count int64
	if err := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND batch_id = ? AND payment_status = ?", userID, batchID, models.PaymentStatusPaid).
		Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}
