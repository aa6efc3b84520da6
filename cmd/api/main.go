package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"offerboard/config"
	"offerboard/internal/db"
	"offerboard/internal/db/migrations"
	deliveryhttp "offerboard/internal/delivery/http"
	"offerboard/internal/delivery/http/controllers"
	"offerboard/internal/repository/postgres"
	"offerboard/internal/services"
)

// @title Offer Board API
// @version 1.0
// @description CRUD API for offers: announcements linked to an author, category, city and region.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := config.NewLogger()

	ctx := context.Background()
	database, err := db.New(ctx, cfg.DBUrl, db.Options{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		logger.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := migrations.Run(ctx, database, logger); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	offerRepo := postgres.NewOfferRepository(database)
	tagRepo := postgres.NewTagRepository(database)

	// Services
	offerService := services.NewOfferService(offerRepo, tagRepo, cfg.RequestTimeout)

	// Controllers
	offerController := controllers.NewOfferController(logger, offerService)
	tagController := controllers.NewTagController(logger, offerService)
	healthController := controllers.NewHealthController(logger, database)

	router := deliveryhttp.NewRouter(logger, cfg.AllowedOrigins, offerController, tagController, healthController)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	logger.Info("server exited")
}
