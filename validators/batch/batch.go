package batchValidator

import (
	"fitforge/middleware"
	"strconv"
	"strings"

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

// idParam validates a positive integer route parameter and stores it in Locals
func idParam(param, localKey, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params(param))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
		}

		c.Locals(localKey, id)
		return c.Next()
	}
}

func BatchID() fiber.Handler {
	return idParam("id", "batchID", "Batch ID")
}

func ChapterID() fiber.Handler {
	return idParam("chapter_id", "chapterID", "Chapter ID")
}

func ContentID() fiber.Handler {
	return idParam("content_id", "contentID", "Content ID")
}

func CreateBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" validate:"required,min=3"`
			Description string `json:"description"`
			Price       uint   `json:"price"`
			ImageURL    string `json:"image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedBatch", reqData)
		return c.Next()
	}
}

func UpdateBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Price       *uint  `json:"price"`
			ImageURL    string `json:"image_url"`
			IsActive    *bool  `json:"is_active"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedBatchUpdate", reqData)
		return c.Next()
	}
}

func CreateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" validate:"required,min=2"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedChapter", reqData)
		return c.Next()
	}
}

func UpdateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  *int   `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedChapterUpdate", reqData)
		return c.Next()
	}
}

func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string   `json:"title" validate:"required,min=2"`
			Description string   `json:"description"`
			VideoURL    string   `json:"video_url"`
			Tags        []string `json:"tags"`
			OrderIndex  int      `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

func UpdateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string   `json:"title"`
			Description string   `json:"description"`
			VideoURL    string   `json:"video_url"`
			Tags        []string `json:"tags"`
			OrderIndex  *int     `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedContentUpdate", reqData)
		return c.Next()
	}
}
