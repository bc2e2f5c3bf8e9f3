package contactController

import (
	"fitforge/config"
	"fitforge/database"
	"fitforge/middleware"
	"fitforge/models"
	"fitforge/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// SubmitContactForm stores a contact submission and notifies the admin inbox
func SubmitContactForm(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*struct {
		Name    string `json:"name" validate:"required,min=2"`
		Email   string `json:"email" validate:"required,email"`
		Mobile  string `json:"mobile" validate:"omitempty,min=10,max=15"`
		Message string `json:"message" validate:"required,min=10"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	submission := models.ContactSubmission{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Mobile:  reqData.Mobile,
		Message: reqData.Message,
	}

	if err := database.Database.Db.Create(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit message!", nil)
	}

	// Notify the admin off the request path
	if config.AppConfig.AdminEmail != "" {
		go func(s models.ContactSubmission) {
			if err := utils.SendContactNotification(config.AppConfig.AdminEmail, s.Name, s.Email, s.Mobile, s.Message); err != nil {
				log.Printf("Error sending contact notification: %v", err)
			}
		}(submission)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message submitted successfully! We will get back to you.", submission)
}

// SubscribeNewsletter captures a newsletter email
func SubscribeNewsletter(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNewsletter").(*struct {
		Email string `json:"email" validate:"required,email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Duplicate subscriptions are conflicts, not errors
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&models.NewsletterSubscription{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already subscribed!", nil)
	}

	subscription := models.NewsletterSubscription{Email: reqData.Email}
	if err := database.Database.Db.Create(&subscription).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to subscribe!", nil)
	}

	go func(email string) {
		if err := utils.SendNewsletterWelcome(email); err != nil {
			log.Printf("Error sending newsletter welcome: %v", err)
		}
	}(subscription.Email)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subscribed successfully!", subscription)
}

// AdminGetContactSubmissions lists contact form submissions
func AdminGetContactSubmissions(c *fiber.Ctx) error {
	var submissions []models.ContactSubmission
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", submissions)
}

// AdminGetNewsletterSubscribers lists newsletter signups
func AdminGetNewsletterSubscribers(c *fiber.Ctx) error {
	var subscriptions []models.NewsletterSubscription
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&subscriptions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subscribers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscribers fetched successfully!", subscriptions)
}
