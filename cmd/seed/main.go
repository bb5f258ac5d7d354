package main

import (
	"context"
	"log"

	"github.com/campusgig/campusgig-backend/internal/config"
	"github.com/campusgig/campusgig-backend/internal/seed"
)

func main() {

	cfg := config.New()
	if !cfg.IsDev {
		log.Fatal("Seeding is only allowed in development environment")
	}

	seeder, cleanup, err := seed.NewSeeder(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize seeder: %v", err)
	}

	defer cleanup()
	seeder.ResetDB()
	if err := seeder.Run(context.Background()); err != nil {
		cleanup()
		log.Fatalf("Seeding failed: %v", err)
	}
}
