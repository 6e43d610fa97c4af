package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"estatecrm_backend/internal/controller"
	"estatecrm_backend/internal/middleware"
	"estatecrm_backend/internal/model"
	"estatecrm_backend/pkg/config"
	"estatecrm_backend/pkg/cron"
	"estatecrm_backend/pkg/database"
	"estatecrm_backend/pkg/email"
	"estatecrm_backend/pkg/utils/storage"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)

	// Protected Routes
	protected := api.Group("/", middleware.AuthMiddleware())
	protected.Get("/me", controller.GetMe)

	// Property Routes
	properties := protected.Group("/properties")
	properties.Get("/", controller.ListMyProperties)
	properties.Post("/", controller.CreateProperty)
	properties.Put("/:id", middleware.CheckPropertyOwnership(), controller.UpdateProperty)
	properties.Delete("/:id", middleware.CheckPropertyOwnership(), controller.DeleteProperty)
	properties.Get("/:id/client", controller.GetPropertyClient)

	// Client Routes
	clients := protected.Group("/clients")
	clients.Get("/", controller.ListMyClients)
	clients.Post("/", controller.CreateClient)
	clients.Put("/:id", middleware.CheckClientOwnership(), controller.UpdateClient)
	clients.Delete("/:id", middleware.CheckClientOwnership(), controller.DeleteClient)
	clients.Get("/:id/properties", controller.GetClientProperties)
	clients.Get("/:id/available-properties", controller.GetAvailableProperties)
	clients.Post("/:id/links", middleware.CheckClientOwnership(), controller.LinkProperty)

	// Lead Routes
	leads := protected.Group("/leads")
	leads.Get("/", controller.ListMyLeads)
	leads.Post("/", controller.CreateLead)
	leads.Put("/:id", controller.UpdateLead)
	leads.Delete("/:id", controller.DeleteLead)

	// Purchase Order Routes
	orders := protected.Group("/orders")
	orders.Get("/", controller.ListMyOrders)
	orders.Get("/:id", controller.GetOrderDetails)
	orders.Put("/:id/status", controller.UpdateOrderStatus)

	// Dashboard routes
	dashboard := api.Group("/dashboard", middleware.AuthMiddleware())
	dashboard.Get("/stats", controller.GetDashboardStats)

	// Image upload
	uploads := protected.Group("/uploads")
	uploads.Post("/property-image", controller.UploadPropertyImage)
	uploads.Delete("/property-image", controller.DeletePropertyImage)
}

func main() {
	cfg := config.Load()

	if cfg.Email.ResendAPIKey != "" {
		if err := email.InitEmailService(cfg.Email.ResendAPIKey); err != nil {
			log.Fatal("Could not initialize email service:", err)
		}
	} else {
		log.Println("RESEND_API_KEY not set, email disabled")
	}

	if err := storage.InitStorage(); err != nil {
		log.Fatal("Could not initialize storage:", err)
	}

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	database.InitDB(cfg.Database.URL)
	err := database.MigrateDatabase(
		&model.User{},
		&model.Client{},
		&model.Property{},
		&model.Lead{},
		&model.PurchaseOrder{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	cron.InitActivityDigestCron()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
