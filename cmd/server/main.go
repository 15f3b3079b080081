package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zonebook/zonebook/internal/config"
	"github.com/zonebook/zonebook/internal/database"
	"github.com/zonebook/zonebook/internal/handlers"
	"github.com/zonebook/zonebook/internal/store"
	"go.uber.org/zap"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Handlers
	reservationStore := store.NewReservationStore(db)
	reservationHandler := handlers.NewReservationHandler(reservationStore, logger)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, logger, reservationHandler)

	// Start Server
	logger.Info("Starting server", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
