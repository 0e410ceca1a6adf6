// File: elysium/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elysium/config"
	"elysium/handlers"
	"elysium/middleware"
	"elysium/models"
	"elysium/routes"
	"elysium/services/booking"
	"elysium/services/concierge"
	"elysium/services/notify"
	"elysium/store"
	"elysium/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Application state. Everything lives in process memory and resets on
	// restart; the admin console is the only mutator of catalog and content.
	catalog := store.NewMemoryCatalogStore(store.SeedServices())
	content := store.NewMemoryContentStore(store.SeedContent())
	ledger := store.NewMemoryLedger(store.SeedAppointments())
	credentials := store.NewMemoryCredentialStore(models.AdminCredentials{
		Username: config.AppConfig.AdminUsername,
		Passcode: config.AppConfig.AdminPasscode,
	})

	// Booking sessions: Redis when configured, process memory otherwise.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	var sessions booking.SessionStore
	if config.AppConfig.RedisAddr != "" {
		sessions = booking.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)
	} else {
		sessions = booking.NewMemorySessionStore(sessionTTL)
	}

	// services.
	dispatcher := notify.NewLogDispatcher(
		logger,
		config.AppConfig.OwnerEmail,
		time.Duration(config.AppConfig.DispatchDelayMs)*time.Millisecond,
	)
	bookingEngine := &booking.DefaultEngine{
		Catalog:    catalog,
		Ledger:     ledger,
		Sessions:   sessions,
		Dispatcher: dispatcher,
		Logger:     logger,
	}
	conciergeSvc := concierge.NewDefaultConciergeService(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		logger,
	)

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingEngine, logger)
	catalogHandler := handlers.NewCatalogHandler(catalog)
	contentHandler := handlers.NewContentHandler(content)
	conciergeHandler := handlers.NewConciergeHandler(conciergeSvc, catalog, content, ledger, logger)
	adminHandler := handlers.NewAdminHandler(credentials, ledger, catalog, conciergeSvc, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListServices:        catalogHandler.ListServices,
		GetContent:          contentHandler.GetContent,
		StartBookingSession: bookingHandler.StartSession,
		ApplyCoupon:         bookingHandler.ApplyCoupon,
		SubmitBooking:       bookingHandler.Submit,
		ConciergeChat:       conciergeHandler.Chat,
		AdminLogin:          adminHandler.Login,

		ListAppointments:      adminHandler.ListAppointments,
		TransitionAppointment: adminHandler.TransitionAppointment,
		AddService:            catalogHandler.AddService,
		UpdateService:         catalogHandler.UpdateService,
		RemoveService:         catalogHandler.RemoveService,
		UpdateContent:         contentHandler.UpdateContent,
		UpdateCredentials:     adminHandler.UpdateCredentials,
		AdminStats:            adminHandler.Stats,
		AdminBriefing:         adminHandler.Briefing,
	}

	// Register routes with the assembled handler bundle.
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
