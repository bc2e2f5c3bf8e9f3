package contactValidator

import (
	"fitforge/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func validationErrors(err error) map[string]string {
	errors := make(map[string]string)
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range fieldErrors {
			errors[fieldError.Field()] = "Failed on rule: " + fieldError.Tag()
		}
	}
	return errors
}

// ContactForm validates a contact submission
func ContactForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name    string `json:"name" validate:"required,min=2"`
			Email   string `json:"email" validate:"required,email"`
			Mobile  string `json:"mobile" validate:"omitempty,min=10,max=15"`
			Message string `json:"message" validate:"required,min=10"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}

// Newsletter validates a subscription email
func Newsletter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email" validate:"required,email"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedNewsletter", reqData)
		return c.Next()
	}
}
