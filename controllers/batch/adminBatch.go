package batchController

import (
	"encoding/json"
	"fitforge/database"
	"fitforge/middleware"
	"fitforge/models"
	"fitforge/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateBatch creates a new batch
func AdminCreateBatch(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBatch").(*struct {
		Title       string `json:"title" validate:"required,min=3"`
		Description string `json:"description"`
		Price       uint   `json:"price"`
		ImageURL    string `json:"image_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	batch := models.Batch{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		ImageURL:    reqData.ImageURL,
		IsActive:    true,
	}

	if err := database.Database.Db.Create(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create batch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Batch created successfully!", batch)
}

// AdminUpdateBatch updates an existing batch
func AdminUpdateBatch(c *fiber.Ctx) error {
	batchID := c.Locals("batchID").(int)

	var batch models.Batch
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", batchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	reqData, ok := c.Locals("validatedBatchUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Price       *uint  `json:"price"`
		ImageURL    string `json:"image_url"`
		IsActive    *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		batch.Title = reqData.Title
	}
	if reqData.Description != "" {
		batch.Description = reqData.Description
	}
	if reqData.Price != nil {
		batch.Price = *reqData.Price
	}
	if reqData.ImageURL != "" {
		batch.ImageURL = reqData.ImageURL
	}
	if reqData.IsActive != nil {
		batch.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update batch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batch updated successfully!", batch)
}

// AdminDeleteBatch soft deletes a batch
func AdminDeleteBatch(c *fiber.Ctx) error {
	batchID := c.Locals("batchID").(int)

	var batch models.Batch
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", batchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	batch.IsDeleted = true
	batch.IsActive = false
	if err := database.Database.Db.Save(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete batch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batch deleted successfully!", nil)
}

// AdminGetAllBatches lists every non-deleted batch, inactive ones included
func AdminGetAllBatches(c *fiber.Ctx) error {
	var batches []models.Batch
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&batches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch batches!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batches fetched successfully!", batches)
}

// AdminCreateChapter adds a chapter to a batch. IsFree is derived from the
// title here, at write time.
func AdminCreateChapter(c *fiber.Ctx) error {
	batchID := c.Locals("batchID").(int)

	var batch models.Batch
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", batchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	reqData, ok := c.Locals("validatedChapter").(*struct {
		Title       string `json:"title" validate:"required,min=2"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	chapter := models.Chapter{
		BatchID:     batch.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
		IsFree:      services.IsFreeChapterTitle(reqData.Title),
	}

	if err := database.Database.Db.Create(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully!", chapter)
}

// AdminUpdateChapter updates a chapter, recomputing IsFree when the title changes
func AdminUpdateChapter(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(int)

	var chapter models.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	reqData, ok := c.Locals("validatedChapterUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  *int   `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		chapter.Title = reqData.Title
		chapter.IsFree = services.IsFreeChapterTitle(reqData.Title)
	}
	if reqData.Description != "" {
		chapter.Description = reqData.Description
	}
	if reqData.OrderIndex != nil {
		chapter.OrderIndex = *reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated successfully!", chapter)
}

// AdminDeleteChapter soft deletes a chapter
func AdminDeleteChapter(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(int)

	var chapter models.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	chapter.IsDeleted = true
	if err := database.Database.Db.Save(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter deleted successfully!", nil)
}

// AdminListChapters lists chapters of a batch in display order
func AdminListChapters(c *fiber.Ctx) error {
	batchID := c.Locals("batchID").(int)

	var chapters []models.Chapter
	if err := database.Database.Db.
		Where("batch_id = ? AND is_deleted = ?", batchID, false).
		Order("order_index asc").
		Find(&chapters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chapters!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters fetched successfully!", chapters)
}

// AdminCreateContent adds a content item to a chapter
func AdminCreateContent(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(int)

	var chapter models.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	reqData, ok := c.Locals("validatedContent").(*struct {
		Title       string   `json:"title" validate:"required,min=2"`
		Description string   `json:"description"`
		VideoURL    string   `json:"video_url"`
		Tags        []string `json:"tags"`
		OrderIndex  int      `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	tagsJSON, err := tagsToJSON(reqData.Tags)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tags!", nil)
	}

	content := models.ChapterContent{
		ChapterID:   chapter.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		VideoURL:    reqData.VideoURL,
		Tags:        tagsJSON,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", content)
}

// AdminUpdateContent updates a content item
func AdminUpdateContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	var content models.ChapterContent
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	reqData, ok := c.Locals("validatedContentUpdate").(*struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		VideoURL    string   `json:"video_url"`
		Tags        []string `json:"tags"`
		OrderIndex  *int     `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		content.Title = reqData.Title
	}
	if reqData.Description != "" {
		content.Description = reqData.Description
	}
	if reqData.VideoURL != "" {
		content.VideoURL = reqData.VideoURL
	}
	if reqData.Tags != nil {
		tagsJSON, err := tagsToJSON(reqData.Tags)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tags!", nil)
		}
		content.Tags = tagsJSON
	}
	if reqData.OrderIndex != nil {
		content.OrderIndex = *reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", content)
}

// AdminDeleteContent soft deletes a content item
func AdminDeleteContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	var content models.ChapterContent
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	content.IsDeleted = true
	if err := database.Database.Db.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
}

// AdminGetChapterContent lists content items for a chapter
func AdminGetChapterContent(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(int)

	var contents []models.ChapterContent
	if err := database.Database.Db.
		Where("chapter_id = ? AND is_deleted = ?", chapterID, false).
		Order("order_index asc").
		Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", contents)
}

func tagsToJSON(tags []string) (datatypes.JSON, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
