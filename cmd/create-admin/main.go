package main

import (
	"flag"
	"os"

	"github.com/VIT-EcoTrack/EcoTrack/internal/auth"
	"github.com/VIT-EcoTrack/EcoTrack/internal/config"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
	"github.com/VIT-EcoTrack/EcoTrack/internal/logger"
	"github.com/VIT-EcoTrack/EcoTrack/internal/storage/postgres"
	"github.com/VIT-EcoTrack/EcoTrack/internal/validation"
)

// Registration only produces citizen accounts, so the first admin has to be
// bootstrapped out of band.
func main() {
	name := flag.String("name", "Administrator", "display name")
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	logger.Initialize("info")
	log := logger.Get()

	if err := validation.ValidateRequired(*email, "-email"); err != nil {
		log.Error("Invalid flags", "error", err)
		os.Exit(1)
	}
	if err := validation.ValidateEmail(*email); err != nil {
		log.Error("Invalid flags", "error", err)
		os.Exit(1)
	}
	if err := validation.ValidateRequired(*password, "-password"); err != nil {
		log.Error("Invalid flags", "error", err)
		os.Exit(1)
	}

	if err := auth.ValidatePassword(*password); err != nil {
		log.Error("Invalid password", "error", err)
		os.Exit(1)
	}

	cfg := config.Load()

	repos, err := postgres.NewContainer(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage", "error", err)
	}
	defer repos.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password", "error", err)
	}

	admin := user.New(*name, *email, hash)
	admin.Role = user.RoleAdmin

	if err := repos.Users().Create(admin); err != nil {
		log.Fatal("Failed to create admin", "error", err)
	}

	log.Info("Admin account created", "id", admin.ID, "email", admin.Email)
}
