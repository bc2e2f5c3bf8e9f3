package batchController

import (
	"fitforge/database"
	"fitforge/middleware"
	"fitforge/models"
	"fitforge/services"
	"fitforge/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllBatches lists active batches for the marketing/catalog pages. Public.
func GetAllBatches(c *fiber.Ctx) error {
	var batches []models.Batch
	if err := database.Database.Db.
		Where("is_active = ? AND is_deleted = ?", true, false).
		Order("created_at desc").
		Find(&batches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch batches!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batches fetched successfully!", batches)
}

// callerAccess resolves the admin/enrolled flags for the optional caller.
// Missing or denied data reads as the most restrictive interpretation.
func callerAccess(c *fiber.Ctx, batchID uint) (isAdmin bool, isEnrolled bool) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return false, false
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return false, false
	}

	return user.IsAdmin, services.IsUserEnrolled(database.Database.Db, userID, batchID)
}

// GetBatchDetails returns a batch with its chapter list and the caller's
// per-chapter entitlement. Anonymous callers get the free/locked view.
func GetBatchDetails(c *fiber.Ctx) error {
	batchID := c.Locals("batchID").(int)

	var batch models.Batch
	if err := database.Database.Db.Where("id = ? AND is_active = ? AND is_deleted = ?", batchID, true, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	isAdmin, isEnrolled := callerAccess(c, batch.ID)

	// A chapter load failure degrades to zero visible chapters, not an error
	var chapters []models.Chapter
	database.Database.Db.
		Where("batch_id = ? AND is_deleted = ?", batchID, false).
		Order("order_index asc").
		Find(&chapters)

	type ChapterWithAccess struct {
		models.Chapter
		Entitlement string `json:"entitlement"`
	}

	result := make([]ChapterWithAccess, len(chapters))
	for i, chapter := range chapters {
		result[i] = ChapterWithAccess{
			Chapter:     chapter,
			Entitlement: services.ResolveEntitlement(isAdmin, isEnrolled, chapter.Title),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batch details fetched successfully!", fiber.Map{
		"batch":       batch,
		"chapters":    result,
		"is_enrolled": isEnrolled,
	})
}

// GetBatchContent returns chapters with their content items. Video references
// are only included for unlocked chapters; locked items carry metadata plus a
// locked marker so the client can render the upsell.
func GetBatchContent(c *fiber.Ctx) error {
	batchID := c.Locals("batchID").(int)

	var batch models.Batch
	if err := database.Database.Db.Where("id = ? AND is_active = ? AND is_deleted = ?", batchID, true, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	isAdmin, isEnrolled := callerAccess(c, batch.ID)

	var chapters []models.Chapter
	database.Database.Db.
		Where("batch_id = ? AND is_deleted = ?", batchID, false).
		Order("order_index asc").
		Find(&chapters)

	type ContentView struct {
		ID            uint   `json:"id"`
		Title         string `json:"title"`
		Description   string `json:"description"`
		Tags          any    `json:"tags"`
		OrderIndex    int    `json:"order_index"`
		Locked        bool   `json:"locked"`
		VideoURL      string `json:"video_url,omitempty"`
		VideoProvider string `json:"video_provider,omitempty"`
		VideoID       string `json:"video_id,omitempty"`
	}

	type ChapterView struct {
		models.Chapter
		Entitlement string        `json:"entitlement"`
		Contents    []ContentView `json:"contents"`
	}

	result := make([]ChapterView, len(chapters))
	for i, chapter := range chapters {
		entitlement := services.ResolveEntitlement(isAdmin, isEnrolled, chapter.Title)

		var contents []models.ChapterContent
		database.Database.Db.
			Where("chapter_id = ? AND is_deleted = ?", chapter.ID, false).
			Order("order_index asc").
			Find(&contents)

		views := make([]ContentView, len(contents))
		for j, content := range contents {
			views[j] = ContentView{
				ID:          content.ID,
				Title:       content.Title,
				Description: content.Description,
				Tags:        content.Tags,
				OrderIndex:  content.OrderIndex,
				Locked:      entitlement == services.EntitlementLocked,
			}

			if entitlement == services.EntitlementUnlocked {
				views[j].VideoURL = content.VideoURL
				// Unrecognized URL shapes degrade to "unsupported"
				provider, videoID, _ := utils.ExtractVideoEmbed(content.VideoURL)
				views[j].VideoProvider = provider
				views[j].VideoID = videoID
			}
		}

		result[i] = ChapterView{
			Chapter:     chapter,
			Entitlement: entitlement,
			Contents:    views,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batch content fetched successfully!", fiber.Map{
		"batch":    batch,
		"chapters": result,
	})
}
