// File: glamora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"glamora/config"
	"glamora/cron"
	"glamora/database"
	bookingRepoPkg "glamora/database/repository/booking"
	reviewRepoPkg "glamora/database/repository/review"
	salonRepoPkg "glamora/database/repository/salon"
	scheduleRepoPkg "glamora/database/repository/schedule"
	userRepoPkg "glamora/database/repository/user"
	"glamora/handlers"
	"glamora/routes"
	"glamora/services/availability"
	"glamora/services/booking"
	"glamora/services/intelligence"
	"glamora/services/notification"
	"glamora/services/payment"
	"glamora/services/review"
	"glamora/services/salon"
	"glamora/services/storage"
	"glamora/services/user"
	"glamora/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary: %v", err)
	}
	storageService := storage.NewStorageService(cld)

	gemini, err := intelligence.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	salonRepo := salonRepoPkg.NewMongoSalonRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	for _, repo := range []interface{}{salonRepo, scheduleRepo, bookingRepo, reviewRepo, userRepo} {
		if idx, ok := repo.(interface{ EnsureIndexes() error }); ok {
			if err := idx.EnsureIndexes(); err != nil {
				logger.Warn("main: failed to ensure indexes", zap.Error(err))
			}
		}
	}

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}

	availabilityService := availability.NewResolver(salonRepo, scheduleRepo, bookingRepo)

	salonService := &salon.DefaultSalonService{
		Repo:         salonRepo,
		ScheduleRepo: scheduleRepo,
		Storage:      storageService,
	}

	notificationService := notification.NewFCMNotificationService(userRepo)

	bookingService := &booking.DefaultBookingService{
		SalonRepo:    salonRepo,
		BookingRepo:  bookingRepo,
		Availability: availabilityService,
		Payments:     payment.NewStripeIntentCreator("usd"),
		Notifier:     notificationService,
	}

	reviewService := &review.DefaultReviewService{
		Repo:        reviewRepo,
		BookingRepo: bookingRepo,
		Salons:      salonService,
	}

	copywriter := intelligence.NewCopywriterService(gemini)

	// Background reconciliation worker.
	cron.InitReconcileWorker(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Availability: &handlers.AvailabilityHandler{Service: availabilityService},
		Booking:      &handlers.BookingHandler{Service: bookingService},
		Salon:        &handlers.SalonHandler{Service: salonService},
		Review:       &handlers.ReviewHandler{Service: reviewService},
		User:         &handlers.UserHandler{Service: userService},
		Admin: &handlers.AdminHandler{
			Users:   userService,
			Reviews: reviewService,
			Salons:  salonRepo,
		},
		AI: &handlers.IntelligenceHandler{
			Copywriter: copywriter,
			Salons:     salonService,
		},
		Sitemap: &handlers.SitemapHandler{
			Salons:  salonRepo,
			BaseURL: config.AppConfig.BaseURL,
		},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
