package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roombook/client"
	"roombook/config"
	"roombook/handlers"
	"roombook/routes"
	"roombook/services/availability"
	"roombook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionStore()
	sessionRedis := utils.GetSessionClient()
	registry := client.NewRegistry()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	policy := availability.KeywordWeekdayPolicy(
		config.AppConfig.BlockedRoomKeywords,
		time.Weekday(config.AppConfig.BlockedWeekday),
	)

	handlerBundle := &routes.HandlerBundle{
		Redis:        sessionRedis,
		Registry:     registry,
		Auth:         handlers.NewAuthHandler(sessionRedis, registry),
		Availability: handlers.NewAvailabilityHandler(policy, availability.DefaultSessions),
		Booking:      handlers.NewBookingHandler(policy),
		Room:         handlers.NewRoomHandler(),
		User:         handlers.NewUserHandler(),
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
