package main

import (
	"log/slog"
	"os"

	"restaurant_ordering/internal/config"
	"restaurant_ordering/internal/database"
	"restaurant_ordering/internal/migrations"
	"restaurant_ordering/pkg/logging"
)

// Drops every menu table and the orders table, recreates them and loads the
// sample menu. All recorded orders are lost.
func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	slog.Info("Initializing database...")
	db, err := database.Initialize(cfg.DatabaseURL, database.Options{LogLevel: cfg.LogLevel})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := migrations.Reset(db, true); err != nil {
		slog.Error("Failed to reset database", "error", err)
		os.Exit(1)
	}

	slog.Info("Database initialization completed successfully!")
}
