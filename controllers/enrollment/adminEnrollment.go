package enrollmentController

import (
	"errors"
	"fitforge/database"
	"fitforge/middleware"
	"fitforge/models"
	"fitforge/services"

	"github.com/gofiber/fiber/v2"
)

// AdminGrantAccess comps a user into a batch without payment
func AdminGrantAccess(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGrant").(*struct {
		UserID  uint `json:"user_id" validate:"required"`
		BatchID uint `json:"batch_id" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var batch models.Batch
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.BatchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	enrollment, err := services.GrantEnrollment(database.Database.Db, reqData.UserID, reqData.BatchID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grant access!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Access granted successfully!", enrollment)
}

// AdminRevokeAccess hard deletes an enrollment row
func AdminRevokeAccess(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)

	if err := services.RevokeEnrollment(database.Database.Db, uint(enrollmentID)); err != nil {
		if errors.Is(err, services.ErrEnrollmentNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to revoke access!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Access revoked successfully!", nil)
}

// AdminGetBatchEnrollments lists enrollments for a batch
func AdminGetBatchEnrollments(c *fiber.Ctx) error {
	batchID := c.Locals("batchID").(int)

	var enrollments []models.Enrollment
	if err := database.Database.Db.
		Where("batch_id = ?", batchID).
		Preload("User").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}
