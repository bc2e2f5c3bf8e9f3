package couponRoutes

import (
	controllers "fitforge/controllers/coupon"
	"fitforge/middleware"
	validators "fitforge/validators/coupon"

	"github.com/gofiber/fiber/v2"
)

// SetupCouponRoutes sets up coupon application and admin coupon management
func SetupCouponRoutes(app *fiber.App) {
	// Users validate a code during checkout
	app.Post("/coupon/apply", middleware.JWTMiddleware, validators.ApplyCoupon(), controllers.ApplyCoupon)

	// Coupon CRUD
	adminGroup := app.Group("/admin/coupon", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware)
	adminGroup.Post("/create", validators.CreateCoupon(), controllers.AdminCreateCoupon)
	adminGroup.Get("/list", controllers.AdminGetAllCoupons)
	adminGroup.Put("/:id", validators.CouponID(), validators.UpdateCoupon(), controllers.AdminUpdateCoupon)
	adminGroup.Delete("/:id", validators.CouponID(), controllers.AdminDeleteCoupon)
}
