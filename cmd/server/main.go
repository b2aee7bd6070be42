package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hbt-medrefill/internal/adapters/http/middleware"
	"hbt-medrefill/internal/adapters/http/routes"
	"hbt-medrefill/internal/adapters/persistence/store"
	"hbt-medrefill/internal/config"
	"hbt-medrefill/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "hbt-medrefill/docs" // Swagger docs
)

// @title HBT MedRefill API
// @version 1.0
// @description نظام حجز مواعيد إعادة صرف الأدوية - مستشفى حوطة بني تميم العام

// @contact.name API Support
// @contact.email samoaltamimi@moh.gov.sa

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host refill.hbth.med.sa
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Booking storage is in-memory and ephemeral; every booking is lost
	// on restart. That is the intended model, there is no database.
	bookingStore := store.NewBookingStore()

	// View coordinator + scheduled notification expiry
	views := services.NewViewService(cfg.Notify.TTL)
	sweeper := services.NewSweeperService(views)
	sweeper.Start()
	defer sweeper.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "HBT MedRefill API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, bookingStore, views, cfg)

	// The admin gate is one shared credential with unlimited retries.
	// It keeps honest users out of the staff panel and nothing more.
	log.Println("⚠️ Admin gate uses a single shared credential, not a security boundary")

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
