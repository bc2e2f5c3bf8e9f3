package authValidator

import (
	"fitforge/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// validationErrors flattens validator output into a field -> message map
func validationErrors(err error) map[string]string {
	errors := make(map[string]string)
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range fieldErrors {
			errors[fieldError.Field()] = "Failed on rule: " + fieldError.Tag()
		}
	}
	return errors
}

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName string `json:"full_name" validate:"required,min=2"`
			Email    string `json:"email" validate:"required,email"`
			Mobile   string `json:"mobile" validate:"omitempty,min=10,max=15"`
			Password string `json:"password" validate:"required,min=8"`
			State    string `json:"state"`
			City     string `json:"city"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

func ProfileUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName string `json:"full_name"`
			Mobile   string `json:"mobile"`
			State    string `json:"state"`
			City     string `json:"city"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}
