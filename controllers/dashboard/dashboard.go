package dashboardController

import (
	"fitforge/database"
	"fitforge/middleware"
	"fitforge/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// AdminDashboardStats aggregates the numbers shown on the admin home screen
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)

	var activeBatches int64
	db.Model(&models.Batch{}).Where("is_active = ? AND is_deleted = ?", true, false).Count(&activeBatches)

	var paidEnrollments int64
	db.Model(&models.Enrollment{}).Where("payment_status = ?", models.PaymentStatusPaid).Count(&paidEnrollments)

	var pendingEnrollments int64
	db.Model(&models.Enrollment{}).Where("payment_status = ?", models.PaymentStatusPending).Count(&pendingEnrollments)

	// Today's enrollments and this month's revenue
	today := now.BeginningOfDay()
	monthStart := now.BeginningOfMonth()

	var todayEnrollments int64
	db.Model(&models.Enrollment{}).
		Where("payment_status = ? AND enrolled_at >= ?", models.PaymentStatusPaid, today).
		Count(&todayEnrollments)

	var totalRevenue int64
	db.Model(&models.Enrollment{}).
		Where("payment_status = ?", models.PaymentStatusPaid).
		Select("COALESCE(SUM(final_amount), 0)").
		Scan(&totalRevenue)

	var monthRevenue int64
	db.Model(&models.Enrollment{}).
		Where("payment_status = ? AND enrolled_at >= ?", models.PaymentStatusPaid, monthStart).
		Select("COALESCE(SUM(final_amount), 0)").
		Scan(&monthRevenue)

	var newsletterSubscribers int64
	db.Model(&models.NewsletterSubscription{}).Where("is_deleted = ?", false).Count(&newsletterSubscribers)

	// Latest activity for the feed
	var recentEnrollments []models.Enrollment
	db.Preload("Batch").Order("created_at desc").Limit(5).Find(&recentEnrollments)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_users":            totalUsers,
		"active_batches":         activeBatches,
		"paid_enrollments":       paidEnrollments,
		"pending_enrollments":    pendingEnrollments,
		"today_enrollments":      todayEnrollments,
		"total_revenue":          totalRevenue,
		"month_revenue":          monthRevenue,
		"newsletter_subscribers": newsletterSubscribers,
		"recent_enrollments":     recentEnrollments,
	})
}
