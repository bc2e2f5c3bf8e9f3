package contactRoutes

import (
	controllers "fitforge/controllers/contact"
	"fitforge/middleware"
	validators "fitforge/validators/contact"

	"github.com/gofiber/fiber/v2"
)

// SetupContactRoutes sets up contact form and newsletter routes
func SetupContactRoutes(app *fiber.App) {
	app.Post("/contact", validators.ContactForm(), controllers.SubmitContactForm)
	app.Post("/newsletter/subscribe", validators.Newsletter(), controllers.SubscribeNewsletter)

	// Admin back-office lists
	app.Get("/admin/contact/list", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware, controllers.AdminGetContactSubmissions)
	app.Get("/admin/newsletter/list", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware, controllers.AdminGetNewsletterSubscribers)
}
