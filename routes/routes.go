package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"travel-admin/controllers"
	"travel-admin/middleware"
	"travel-admin/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	bc *controllers.BookingController,
	pc *controllers.PropertyController,
	vc *controllers.VehicleController,
	fc *controllers.FarmController,
	cc *controllers.CommissionController,
	poc *controllers.PayoutController,
	dc *controllers.DashboardController,
	sc *controllers.SettingsController,
	sessions *services.SessionService,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// OTP login is the only surface reachable without a session.
	auth := api.Group("/auth")
	{
		auth.POST("/otp/send", ac.SendOTP)
		auth.POST("/otp/verify", ac.VerifyOTP)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireSession(sessions))
	{
		protected.POST("/auth/logout", ac.Logout)
		protected.GET("/auth/session", ac.GetSession)

		bookings := protected.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("/:id/cancel", bc.CancelBooking)
		}

		properties := protected.Group("/properties")
		{
			properties.GET("", pc.GetProperties)
			properties.GET("/:id", pc.GetProperty)
			properties.POST("", pc.SaveProperty)
			properties.PATCH("/:id/status", pc.UpdatePropertyStatus)
			properties.PUT("/:id/approval-toggle", pc.ToggleApproval)
			properties.DELETE("/:id", pc.DeleteProperty)
			properties.POST("/rooms", pc.SaveRoom)
		}

		vehicles := protected.Group("/vehicles")
		{
			vehicles.GET("", vc.GetVehicles)
			vehicles.GET("/:id", vc.GetVehicle)
			vehicles.POST("", vc.SaveVehicle)
			vehicles.PATCH("/:id/status", vc.UpdateVehicleStatus)
			vehicles.DELETE("/:id", vc.DeleteVehicle)
		}

		farms := protected.Group("/farms")
		{
			farms.GET("", fc.GetFarms)
			farms.POST("", fc.SaveFarm)
			farms.DELETE("/:id", fc.DeleteFarm)
			farms.GET("/statistics", fc.GetFarmStatistics)
			farms.GET("/commission-total", fc.GetFarmCommissionTotal)
		}

		farmBookings := protected.Group("/farm-bookings")
		{
			farmBookings.GET("", fc.GetFarmBookings)
			farmBookings.GET("/:reference", fc.GetFarmBooking)
		}

		commissions := protected.Group("/commissions")
		{
			commissions.GET("", cc.GetCommissions)
			commissions.GET("/statistics", cc.GetStatistics)
			commissions.GET("/earnings", cc.GetEarnings)
		}

		commissionSettings := protected.Group("/commission-settings")
		{
			commissionSettings.GET("", cc.GetSettings)
			commissionSettings.POST("/:id/update", cc.UpdateSettingRate)
		}

		payouts := protected.Group("/payouts")
		{
			payouts.GET("", poc.GetPayouts)
			payouts.POST("/:id/mark-paid", poc.MarkPaid)
		}

		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("/stats", dc.GetStats)
			dashboard.GET("/recent-activity", dc.GetRecentActivity)
		}

		credentials := protected.Group("/settings/credentials")
		{
			credentials.GET("", sc.GetCredentials)
			credentials.POST("", sc.CreateCredential)
			credentials.PUT("/:id", sc.UpdateCredential)
			credentials.DELETE("/:id", sc.DeleteCredential)
		}
	}

	return r
}
