package main

import (
	"fmt"
	"os"

	"github.com/VIT-EcoTrack/EcoTrack/internal/config"
	"github.com/VIT-EcoTrack/EcoTrack/internal/logger"
	"github.com/VIT-EcoTrack/EcoTrack/internal/storage/postgres"
)

func main() {
	cfg := config.Load()

	logger.Initialize("info")
	log := logger.Database()

	log.Info("Starting migration process")

	db, err := postgres.Connect(cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := postgres.AutoMigrate(db); err != nil {
		log.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	if err := postgres.Close(db); err != nil {
		log.Error("Failed to close database connection", "error", err)
	}

	fmt.Println("Migration process completed!")
}
