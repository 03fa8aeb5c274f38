package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VIT-EcoTrack/EcoTrack/internal/classifier"
	"github.com/VIT-EcoTrack/EcoTrack/internal/config"
	"github.com/VIT-EcoTrack/EcoTrack/internal/logger"
	"github.com/VIT-EcoTrack/EcoTrack/internal/server"
	"github.com/VIT-EcoTrack/EcoTrack/internal/storage/objects"
	"github.com/VIT-EcoTrack/EcoTrack/internal/storage/postgres"
)

func main() {
	cfg := config.Load()

	logLevel := "info"
	if cfg.Server.GinMode == "debug" {
		logLevel = "debug"
	}
	logger.Initialize(logLevel)
	log := logger.Get()

	repos, err := postgres.NewContainer(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage", "error", err)
	}

	store, err := objects.New(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to initialize object storage", "error", err)
	}

	cls := classifier.New(cfg.Classifier.URL, time.Duration(cfg.Classifier.TimeoutSeconds)*time.Second)

	srv := server.New(cfg, repos, store, cls)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("Server failed", "error", err)
		}
	case sig := <-quit:
		log.Info("Received shutdown signal", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
	}

	if err := repos.Close(); err != nil {
		log.Error("Failed to close database connection", "error", err)
	}

	log.Info("Server stopped")
}
