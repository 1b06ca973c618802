package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"travel-admin/config"
	"travel-admin/controllers"
	"travel-admin/routes"
	"travel-admin/services"
	"travel-admin/upstream"
	"travel-admin/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// The platform API base is required; everything downstream proxies it.
	baseURL := strings.TrimSpace(os.Getenv("UPSTREAM_BASE_URL"))
	if baseURL == "" {
		log.Fatal("❌ ERROR: UPSTREAM_BASE_URL environment variable is not set. Cannot reach the platform API.")
	}
	log.Println("✅ UPSTREAM_BASE_URL detected.")

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	up := upstream.NewClient(baseURL)
	if statsURL := strings.TrimSpace(os.Getenv("DASHBOARD_STATS_URL")); statsURL != "" {
		up.StatsURL = statsURL
	}

	// Initialize services
	sessionService := services.NewSessionService(db)
	auditService := services.NewAuditService(db)
	authService := services.NewAuthService(up, sessionService)
	bookingService := services.NewBookingService(up)
	propertyService := services.NewPropertyService(up)
	vehicleService := services.NewVehicleService(up)
	farmService := services.NewFarmService(up)
	commissionService := services.NewCommissionService(up)
	payoutService := services.NewPayoutService(up)
	dashboardService := services.NewDashboardService(up)
	credentialService := services.NewCredentialService(up)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	bookingController := controllers.NewBookingController(bookingService, auditService)
	propertyController := controllers.NewPropertyController(propertyService, auditService)
	vehicleController := controllers.NewVehicleController(vehicleService, auditService)
	farmController := controllers.NewFarmController(farmService, auditService)
	commissionController := controllers.NewCommissionController(commissionService, auditService)
	payoutController := controllers.NewPayoutController(payoutService, auditService)
	dashboardController := controllers.NewDashboardController(dashboardService, auditService)
	settingsController := controllers.NewSettingsController(credentialService, auditService)

	router := routes.SetupRouter(
		authController,
		bookingController,
		propertyController,
		vehicleController,
		farmController,
		commissionController,
		payoutController,
		dashboardController,
		settingsController,
		sessionService,
	)

	// Port from env (prefer), fallback to 8080
	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
