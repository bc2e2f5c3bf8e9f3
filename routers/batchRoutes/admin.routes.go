package batchRoutes

import (
	controllers "fitforge/controllers/batch"
	"fitforge/middleware"
	validators "fitforge/validators/batch"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminBatchRoutes sets up admin batch/chapter/content management routes
func SetupAdminBatchRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/batch", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware)

	// Batch CRUD
	adminGroup.Post("/create", validators.CreateBatch(), controllers.AdminCreateBatch)
	adminGroup.Put("/:id", validators.BatchID(), validators.UpdateBatch(), controllers.AdminUpdateBatch)
	adminGroup.Delete("/:id", validators.BatchID(), controllers.AdminDeleteBatch)
	adminGroup.Get("/list", controllers.AdminGetAllBatches)

	// Chapter Management
	adminGroup.Post("/:id/chapter", validators.BatchID(), validators.CreateChapter(), controllers.AdminCreateChapter)
	adminGroup.Get("/:id/chapters", validators.BatchID(), controllers.AdminListChapters)

	chapterGroup := app.Group("/admin/chapter", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware)
	chapterGroup.Put("/:chapter_id", validators.ChapterID(), validators.UpdateChapter(), controllers.AdminUpdateChapter)
	chapterGroup.Delete("/:chapter_id", validators.ChapterID(), controllers.AdminDeleteChapter)

	// Content Management
	chapterGroup.Post("/:chapter_id/content", validators.ChapterID(), validators.CreateContent(), controllers.AdminCreateContent)
	chapterGroup.Get("/:chapter_id/content", validators.ChapterID(), controllers.AdminGetChapterContent)

	contentGroup := app.Group("/admin/content", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware)
	contentGroup.Put("/:content_id", validators.ContentID(), validators.UpdateContent(), controllers.AdminUpdateContent)
	contentGroup.Delete("/:content_id", validators.ContentID(), controllers.AdminDeleteContent)
}
