package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"glamora/handlers"
	"glamora/middleware"
	"glamora/models"
)

// RegisterAuthRoutes registers account registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)

		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/logout", hb.User.LogoutHandler)
	}
}

// RegisterUserRoutes registers profile endpoints for the authenticated user.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	{
		api.GET("/me", hb.User.GetProfileHandler)
		api.PATCH("/me", hb.User.UpdateProfileHandler)
		api.DELETE("/me", hb.User.DeleteAccountHandler)
		api.PUT("/me/fcm-token", hb.User.UpdateFCMTokenHandler)
	}
}

// RegisterSalonRoutes registers the public catalogue and the owner-scoped
// salon management endpoints.
func RegisterSalonRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/salons")
	{
		// Public browse and read endpoints.
		api.GET("", hb.Salon.BrowseSalonsHandler)
		api.GET("/:id", hb.Salon.GetSalonHandler)
		api.GET("/:id/availability", hb.Availability.GetAvailabilityHandler)
		api.GET("/:id/schedule", hb.Salon.ListScheduledDatesHandler)
		api.GET("/:id/reviews", hb.Review.ListSalonReviewsHandler)

		// Owner-scoped mutations.
		owner := api.Group("")
		owner.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleOwner, models.RoleAdmin))
		owner.POST("", hb.Salon.CreateSalonHandler)
		owner.PATCH("/:id", hb.Salon.UpdateSalonHandler)
		owner.DELETE("/:id", hb.Salon.DeleteSalonHandler)
		owner.PUT("/:id/services", hb.Salon.UpsertServiceHandler)
		owner.DELETE("/:id/services/:serviceId", hb.Salon.RemoveServiceHandler)
		owner.PUT("/:id/schedule/:date", hb.Salon.SetDayScheduleHandler)
		owner.DELETE("/:id/schedule/:date", hb.Salon.ClearDayScheduleHandler)
		owner.POST("/:id/promotions", hb.Salon.AddPromotionHandler)
		owner.DELETE("/:id/promotions/:promoId", hb.Salon.RemovePromotionHandler)
		owner.POST("/:id/photos", hb.Salon.UploadPhotoHandler)
		owner.GET("/:id/bookings", hb.Booking.ListSalonBookingsHandler)
	}

	ownerView := r.Group("/api/owner")
	ownerView.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleOwner, models.RoleAdmin))
	ownerView.GET("/salons", hb.Salon.ListMySalonsHandler)
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.ListMyBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.POST("/:id/confirm", hb.Booking.ConfirmBookingHandler)
		api.POST("/:id/cancel", hb.Booking.CancelBookingHandler)
	}
}

// RegisterReviewRoutes registers review submission.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	{
		api.POST("", hb.Review.CreateReviewHandler)
	}
}

// RegisterAIRoutes registers owner-facing copywriting endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleOwner, models.RoleAdmin))
	{
		api.POST("/salons/:id/description", hb.AI.GenerateDescriptionHandler)
		api.POST("/salons/:id/services/:serviceId/blurb", hb.AI.GenerateServiceBlurbHandler)
		api.POST("/salons/:id/promotions/:promoId/copy", hb.AI.GeneratePromotionCopyHandler)
	}
}

// RegisterAdminRoutes registers moderation endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.GET("/users", hb.Admin.ListUsersHandler)
		api.GET("/salons", hb.Admin.ListSalonsHandler)
		api.DELETE("/users/:id", hb.Admin.DeleteUserHandler)
		api.DELETE("/salons/:id", hb.Admin.DeleteSalonHandler)
		api.DELETE("/reviews/:id", hb.Admin.DeleteReviewHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Glamora"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	r.GET("/sitemap.xml", hb.Sitemap.GetSitemapHandler)

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterSalonRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
