package adminRoutes

import (
	controllers "fitforge/controllers/dashboard"
	"fitforge/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminDashboardRoutes sets up the admin dashboard
func SetupAdminDashboardRoutes(app *fiber.App) {
	dashGroup := app.Group("/admin/dashboard", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware)
	dashGroup.Get("/stats", controllers.AdminDashboardStats)
}
