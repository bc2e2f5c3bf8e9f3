package utils

import (
	"fitforge/database"
	"fitforge/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeMaintenanceScheduler sets up the daily maintenance jobs
func InitializeMaintenanceScheduler() {
	log.Println("[MAINTENANCE-SCHEDULER] Initializing maintenance scheduler...")

	c := cron.New()

	// Run daily at 9 AM to expire coupons and remind unfinished checkouts
	c.AddFunc("0 9 * * *", func() {
		log.Println("[MAINTENANCE-SCHEDULER] Running daily maintenance...")
		DeactivateExpiredCoupons()
		RemindPendingEnrollments()
	})

	c.Start()
	log.Println("[MAINTENANCE-SCHEDULER] Maintenance scheduler started - runs daily at 9 AM")
}

// DeactivateExpiredCoupons flips is_active off for coupons past their expiry
func DeactivateExpiredCoupons() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&models.Coupon{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at < ?", true, now).
		Update("is_active", false)

	if result.Error != nil {
		log.Printf("[MAINTENANCE-SCHEDULER] Error deactivating expired coupons: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[MAINTENANCE-SCHEDULER] Deactivated %d expired coupons", result.RowsAffected)
	}
}

// RemindPendingEnrollments emails users whose checkout has sat in PENDING for
// over a day. Abandoned checkouts stay PENDING; this only nudges, once.
func RemindPendingEnrollments() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -1)

	var pendingEnrollments []models.Enrollment
	if err := db.
		Where("payment_status = ? AND reminder_sent = false", models.PaymentStatusPending).
		Where("updated_at < ?", cutoff).
		Preload("Batch").
		Find(&pendingEnrollments).Error; err != nil {
		log.Printf("[MAINTENANCE-SCHEDULER] Error fetching pending enrollments: %v", err)
		return
	}

	log.Printf("[MAINTENANCE-SCHEDULER] Found %d stale pending enrollments", len(pendingEnrollments))

	for _, enrollment := range pendingEnrollments {
		// Get user details
		var user models.User
		if err := db.Where("id = ?", enrollment.UserID).First(&user).Error; err != nil {
			log.Printf("[MAINTENANCE-SCHEDULER] Error fetching user %d: %v", enrollment.UserID, err)
			continue
		}

		// Send reminder email
		SendPendingPaymentReminder(user.Email, user.FullName, enrollment.Batch.Title, enrollment.FinalAmount)

		// Mark reminder as sent
		db.Model(&enrollment).Update("reminder_sent", true)
		log.Printf("[MAINTENANCE-SCHEDULER] Sent payment reminder for enrollment %d to %s", enrollment.ID, user.Email)
	}
}
