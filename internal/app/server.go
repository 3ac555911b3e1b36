package app

import (
	"net/http"
	"time"

	"photomarket/internal/config"
	"photomarket/internal/handlers"
	"photomarket/internal/models"
	"photomarket/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer builds the fiber app with every route mounted.
func NewServer(cfg *config.Config, d *Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "photomarket",
		BodyLimit:    cfg.Server.BodyLimitMB << 20,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Refresh-Token",
		ExposeHeaders: "Authorization",
	}))

	// Serve uploaded files when they live on local disk
	if disk, ok := d.Storage.(*storage.DiskStore); ok {
		app.Static("/uploads", disk.Dir(), fiber.Static{MaxAge: int((24 * time.Hour).Seconds())})
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	maxUpload := cfg.Storage.MaxUploadBytes()
	auth := handlers.AuthMiddleware(d.Users)
	photographerOnly := handlers.RequireRole(models.RolePhotographer)

	api := app.Group("/api")

	// Public Routes
	api.Post("/register", handlers.RegisterHandler(d.Users))
	api.Post("/login", handlers.LoginHandler(d.Users))
	api.Post("/refresh", handlers.RefreshHandler(d.Users))
	api.Post("/logout", handlers.LogoutHandler(d.Users))

	api.Get("/photographers", handlers.ListPhotographersHandler(d.Listing))
	api.Get("/photographers/:id", handlers.GetPhotographerHandler(d.Listing))
	api.Get("/photographers/:id/categories", handlers.ListPhotographerCategoriesHandler(d.Listing))
	api.Get("/portfolio", handlers.ListPortfolioHandler(d.Listing))
	api.Get("/categories", handlers.ListCategoryNamesHandler(d.Listing))

	api.Get("/ids/legacy/:legacy_id", handlers.ResolveLegacyHandler(d.IDs))
	api.Get("/ids/uuid/:uuid", handlers.ResolveUUIDHandler(d.IDs))

	// Protected Routes
	api.Get("/session", auth, handlers.SessionHandler(d.Identity))

	api.Post("/bookings", auth, handlers.CreateBookingHandler(d.Bookings))
	api.Get("/bookings", auth, handlers.ListBookingsHandler(d.Bookings))
	api.Patch("/bookings/:id/status", auth, handlers.UpdateBookingStatusHandler(d.Bookings))
	api.Post("/bookings/:id/cancel", auth, handlers.CancelBookingHandler(d.Bookings))

	// Photographer-only management
	api.Get("/profile", auth, photographerOnly, handlers.GetProfileHandler(d.Profiles))
	api.Put("/profile", auth, photographerOnly, handlers.UpdateProfileHandler(d.Profiles))
	api.Put("/profile/photo", auth, photographerOnly, handlers.UploadPhotoHandler(d.Profiles, maxUpload))

	api.Post("/categories", auth, photographerOnly, handlers.CreateCategoryHandler(d.Categories))
	api.Put("/categories/:id", auth, photographerOnly, handlers.UpdateCategoryHandler(d.Categories))
	api.Delete("/categories/:id", auth, photographerOnly, handlers.DeleteCategoryHandler(d.Categories))

	api.Post("/portfolio", auth, photographerOnly, handlers.UploadPortfolioHandler(d.Portfolio, maxUpload))
	api.Put("/portfolio/:id", auth, photographerOnly, handlers.UpdatePortfolioHandler(d.Portfolio))
	api.Delete("/portfolio/:id", auth, photographerOnly, handlers.DeletePortfolioHandler(d.Portfolio))

	// WebSocket Route
	// Note: Middleware order matters. WSUpgradeMiddleware checks if it's a WS request,
	// AuthMiddleware checks the token.
	app.Use("/ws", handlers.WSUpgradeMiddleware)
	app.Use("/ws", auth)
	app.Get("/ws", handlers.WebSocketHandler(d.Hub))

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "route not found"})
	})

	return app
}
