// Manually trigger a full suggestion engine sweep.
//
// The sweep is also wired into the main application's background scheduler
// (once per engine.run_interval_hours). This script is for manual runs, for
// example after a bulk data import.
//
// Usage: go run scripts/run_engine.go

package main

import (
	"log"
	"os"

	"recruiting_backend/internal/config"
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/service"
	"recruiting_backend/pkg/database"
	"recruiting_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("Cannot read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Cannot parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}

	suggestions := service.NewSuggestionService(
		repository.NewSuggestionRepository(db),
		repository.NewSchoolRepository(db),
		repository.NewInteractionRepository(db),
		repository.NewTaskRepository(db),
		repository.NewEventRepository(db),
		repository.NewVideoRepository(db),
		repository.NewUserRepository(db),
		rdb,
	)

	log.Println("Running suggestion engine for all athletes...")
	if err := suggestions.RunForAllAthletes(); err != nil {
		log.Fatalf("Engine sweep failed: %v", err)
	}
	log.Println("Done")
}
