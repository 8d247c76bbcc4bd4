package main

import (
	"log"

	"github.com/RogutKuba/assemblyai-hackathon/internal/infrastructure/database"
	"github.com/RogutKuba/assemblyai-hackathon/pkg/config"
)

// Standalone migration runner for CI/CD and production, where the API
// process starts with DB_AUTO_MIGRATE disabled.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Printf("🔄 Applying lesson_documents migrations from %s/ ...", database.MigrationsDir)

	n, err := database.ApplyMigrations(db)
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Printf("✅ Applied %d migration(s)", n)
}
