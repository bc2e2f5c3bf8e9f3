package batchRoutes

import (
	controllers "fitforge/controllers/batch"
	"fitforge/middleware"
	validators "fitforge/validators/batch"

	"github.com/gofiber/fiber/v2"
)

// SetupBatchRoutes sets up the public catalog routes. Auth is optional so
// anonymous visitors get the free/locked view.
func SetupBatchRoutes(app *fiber.App) {
	batchGroup := app.Group("/batch")

	batchGroup.Get("/list", middleware.OptionalJWTMiddleware, controllers.GetAllBatches)
	batchGroup.Get("/:id", middleware.OptionalJWTMiddleware, validators.BatchID(), controllers.GetBatchDetails)
	batchGroup.Get("/:id/content", middleware.OptionalJWTMiddleware, validators.BatchID(), controllers.GetBatchContent)
}
