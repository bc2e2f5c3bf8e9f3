package main

import (
	"fitforge/config"
	"fitforge/database"
	adminRoutes "fitforge/routers/adminRoutes"
	authRoutes "fitforge/routers/authRoutes"
	batchRoutes "fitforge/routers/batchRoutes"
	contactRoutes "fitforge/routers/contactRoutes"
	couponRoutes "fitforge/routers/couponRoutes"
	enrollmentRoutes "fitforge/routers/enrollmentRoutes"
	"fitforge/services"
	"fitforge/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder (QR image, batch thumbnails)
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	batchRoutes.SetupBatchRoutes(app)
	batchRoutes.SetupAdminBatchRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	couponRoutes.SetupCouponRoutes(app)
	contactRoutes.SetupContactRoutes(app)
	adminRoutes.SetupAdminDashboardRoutes(app)

	// Background pieces: transition audit log and daily maintenance
	services.StartEnrollmentEventLogger()
	utils.InitializeMaintenanceScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
