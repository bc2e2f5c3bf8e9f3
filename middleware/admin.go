package middleware

import (
	"fitforge/database"
	"fitforge/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminOnlyMiddleware checks the is_admin flag on the profiles row. The row is
// the single source of truth; the JWT claim is never trusted for this check.
func AdminOnlyMiddleware(c *fiber.Ctx) error {
	// Get user ID from context (set by the JWT middleware)
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Unauthorized: User ID not found",
			"data":    nil,
		})
	}

	var user models.User
	err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "User not found!",
				"data":    nil,
			})
		}
		// Other DB error
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Server error while checking permissions!",
			"data":    nil,
		})
	}

	if !user.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  false,
			"message": "Access denied! Admin only.",
			"data":    nil,
		})
	}

	// Admin confirmed, proceed
	return c.Next()
}
