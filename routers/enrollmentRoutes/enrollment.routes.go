package enrollmentRoutes

import (
	controllers "fitforge/controllers/enrollment"
	"fitforge/middleware"
	batchValidators "fitforge/validators/batch"
	validators "fitforge/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up checkout, payment callback and dashboard routes
func SetupEnrollmentRoutes(app *fiber.App) {
	// Checkout lives under the batch the user is buying
	app.Post("/batch/:id/checkout", middleware.JWTMiddleware, validators.Checkout(), controllers.InitiateCheckout)

	// Gateway result callback
	app.Post("/payment/callback", middleware.JWTMiddleware, validators.PaymentCallback(), controllers.PaymentCallback)

	// Dashboard
	app.Get("/user/enrollments", middleware.JWTMiddleware, validators.EnrollmentList(), controllers.GetUserEnrollments)

	// Admin access management
	adminGroup := app.Group("/admin/enrollment", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware)
	adminGroup.Post("/grant", validators.Grant(), controllers.AdminGrantAccess)
	adminGroup.Get("/batch/:id", batchValidators.BatchID(), controllers.AdminGetBatchEnrollments)
	adminGroup.Delete("/:enrollment_id", validators.EnrollmentID(), controllers.AdminRevokeAccess)
}
