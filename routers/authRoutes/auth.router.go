package authRoutes

import (
	controllers "fitforge/controllers/auth"
	"fitforge/middleware"
	validators "fitforge/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up authentication and profile routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), controllers.Signup)
	authGroup.Post("/login", validators.Login(), controllers.Login)

	userGroup := app.Group("/user")
	userGroup.Get("/profile", middleware.JWTMiddleware, controllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, validators.ProfileUpdate(), controllers.UpdateProfile)
}
