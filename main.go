// File: maidly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maidly/config"
	"maidly/cron"
	"maidly/database"
	inquiryRepo "maidly/database/repository/inquiry"
	referralRepo "maidly/database/repository/referral"
	reservationRepo "maidly/database/repository/reservation"
	"maidly/handlers"
	"maidly/middleware"
	"maidly/routes"
	"maidly/services/notification"
	"maidly/services/pricing"
	"maidly/services/referral"
	"maidly/services/reservation"
	"maidly/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	resRepo := reservationRepo.NewMongoReservationRepo()
	inqRepo := inquiryRepo.NewMongoInquiryRepo()
	refRepo := referralRepo.NewMongoReferralRepo()

	// async task client for reservation confirmations.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer asynqClient.Close()

	// services.
	configuratorService := &pricing.DefaultConfiguratorService{
		CatalogData: pricing.DefaultCatalog(),
		CacheClient: utils.GetSessionCacheClient(),
		Currency:    config.AppConfig.CurrencyCode,
		SessionTTL:  pricing.DefaultSessionTTL,
	}

	referralService := &referral.DefaultReferralService{
		Repo: refRepo,
	}

	reservationService := &reservation.DefaultReservationService{
		Repo:        resRepo,
		Referral:    referralService,
		Enqueuer:    asynqClient,
		CatalogData: configuratorService.CatalogData,
		Currency:    config.AppConfig.CurrencyCode,
	}

	notificationService := &notification.DefaultNotificationService{}
	cron.InitConfirmationWorker(notificationService, resRepo)

	pricingHandler := handlers.NewPricingHandler(configuratorService, logger)
	configuratorHandler := handlers.NewConfiguratorHandler(configuratorService, reservationService, logger)
	inquiryHandler := handlers.NewInquiryHandler(inqRepo, logger)
	adminHandler := handlers.NewAdminHandler(reservationService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Pricing endpoints.
		GetCatalog: pricingHandler.GetCatalog,
		GetPresets: pricingHandler.GetPresets,
		Quote:      pricingHandler.Quote,

		// Configurator session endpoints.
		InitiateSession:    configuratorHandler.InitiateSession,
		GetSession:         configuratorHandler.GetSession,
		UpdateSession:      configuratorHandler.UpdateSession,
		CancelSession:      configuratorHandler.CancelSession,
		ConfirmReservation: configuratorHandler.ConfirmReservation,

		// Inquiry endpoints.
		CreateInquiry: inquiryHandler.CreateInquiry,

		// Admin endpoints.
		ListReservations:        adminHandler.ListReservationsHandler,
		GetReservation:          adminHandler.GetReservationHandler,
		UpdateReservationStatus: adminHandler.UpdateReservationStatusHandler,
		ListInquiries:           inquiryHandler.ListInquiries,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background health checks for the health endpoint.
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetSessionCacheClient(), database.MongoClient)

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
