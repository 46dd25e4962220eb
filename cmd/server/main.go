package main

import (
	"log"
	"os"
	"strings"

	"pos-backend/internal/audit"
	"pos-backend/internal/auth"
	"pos-backend/internal/category"
	"pos-backend/internal/config"
	"pos-backend/internal/dashboard"
	"pos-backend/internal/database"
	"pos-backend/internal/dish"
	"pos-backend/internal/inventory"
	"pos-backend/internal/order"
	"pos-backend/internal/role"
	"pos-backend/internal/settings"
	"pos-backend/internal/upload"
	"pos-backend/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := config.Load()
	database.Init(cfg)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Could not create upload directory: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"success": false,
					"message": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Something went wrong",
			})
		},
	})

	app.Use(logger.New())

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(corsOrigins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Location",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: true,
	}))

	app.Static("/uploads", cfg.UploadDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello from POS Server!"})
	})

	api := app.Group("/api")

	// Public auth
	api.Post("/user/register", user.RegisterHandler())
	api.Post("/user/login", user.LoginHandler(cfg))

	// Dashboard reads are open; the landing screen polls them before login.
	api.Get("/dashboard", dashboard.StatsHandler())
	api.Get("/dashboard/analytics", dashboard.AnalyticsHandler())

	// Protected
	protected := api.Group("")
	protected.Use(auth.Middleware(cfg))

	protected.Post("/user/logout", user.LogoutHandler())
	protected.Get("/user/profile", user.ProfileHandler())
	protected.Get("/user", user.ListHandler())
	protected.Put("/user/:id", user.UpdateHandler())
	protected.Delete("/user/:id", user.DeleteHandler())
	protected.Get("/user/:id/sessions", audit.SessionsHandler())
	protected.Get("/user/:id/activity", audit.ActivityHandler())

	protected.Get("/role", role.ListHandler())
	protected.Get("/role/:id", role.GetHandler())
	protected.Post("/role", role.CreateHandler())
	protected.Put("/role/:id", role.UpdateHandler())
	protected.Delete("/role/:id", role.DeleteHandler())

	protected.Get("/category", category.ListHandler())
	protected.Post("/category", category.CreateHandler(cfg))
	protected.Put("/category/:id", category.UpdateHandler())
	protected.Delete("/category/:id", category.DeleteHandler())

	protected.Get("/dish", dish.ListHandler())
	protected.Post("/dish", dish.CreateHandler())
	protected.Put("/dish/:id", dish.UpdateHandler())
	protected.Delete("/dish/:id", dish.DeleteHandler())

	protected.Get("/order", order.ListHandler())
	protected.Get("/order/:id", order.GetHandler())
	protected.Post("/order", order.CreateHandler())
	protected.Put("/order/:id", order.UpdateStatusHandler())

	protected.Get("/inventory", inventory.ListHandler())
	protected.Post("/inventory", inventory.CreateHandler())
	protected.Put("/inventory/:id", inventory.UpdateHandler())
	protected.Delete("/inventory/:id", inventory.DeleteHandler())

	protected.Get("/settings", settings.GetHandler())
	protected.Put("/settings", settings.UpdateHandler())

	protected.Post("/upload/logo", upload.LogoHandler(cfg))
	protected.Get("/dashboard/export", dashboard.ExportHandler())

	log.Println("POS server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
