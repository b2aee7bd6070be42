package routes

import (
	"hbt-medrefill/internal/adapters/http/handlers"
	"hbt-medrefill/internal/adapters/http/middleware"
	"hbt-medrefill/internal/adapters/persistence/store"
	"hbt-medrefill/internal/config"
	"hbt-medrefill/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, st *store.BookingStore, views *services.ViewService, cfg *config.Config) {
	// Initialize services
	bookingService := services.NewBookingService(st)
	trackingService := services.NewTrackingService(st)
	sessionService := services.NewSessionService(cfg, views)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	bookingHandler := handlers.NewBookingHandler(bookingService, views)
	trackingHandler := handlers.NewTrackingHandler(trackingService, views)
	sessionHandler := handlers.NewSessionHandler(sessionService, views, cfg)
	viewHandler := handlers.NewViewHandler(views, sessionService)
	adminHandler := handlers.NewAdminHandler(bookingService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Public booking routes
	bookingRoutes := apiV1.Group("/bookings")
	bookingRoutes.Post("/", bookingHandler.Create)
	bookingRoutes.Post("/track", trackingHandler.Track)

	// Admin gate routes (public; the gate allows unlimited retries)
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/login", sessionHandler.Login)
	authRoutes.Post("/logout", sessionHandler.Logout)
	authRoutes.Get("/session", sessionHandler.Session)

	// View coordinator routes
	viewRoutes := apiV1.Group("/view")
	viewRoutes.Get("/", viewHandler.State)
	viewRoutes.Post("/switch", viewHandler.Switch)

	// Staff panel routes (behind the admin gate)
	adminRoutes := apiV1.Group("/admin/bookings")
	adminRoutes.Use(middleware.AdminGate(cfg, sessionService))
	adminRoutes.Get("/", adminHandler.List)
	adminRoutes.Get("/stats", adminHandler.Stats)
	adminRoutes.Put("/:id/status", adminHandler.UpdateStatus)
	adminRoutes.Delete("/:id", adminHandler.Delete)
}
