package database

import (
	"fmt"
	"log"
	"time"

	migrate "github.com/rubenv/sql-migrate"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/RogutKuba/assemblyai-hackathon/pkg/config"
)

// Shared with scripts/migrate.go so the dev auto-migrate path and the
// standalone runner apply the same migration set.
const (
	MigrationsDir = "migrations"
	Dialect       = "postgres"
)

// NewPostgresDB opens the lesson document database. The workload is one
// small table with a single upsert per successful summary round plus
// occasional point reads, so the pool stays small and idle connections
// are recycled quickly.
func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	// Summary rounds run in the background; gorm query logging at Info
	// level would interleave with the structured round logs, so keep it
	// to warnings outside development.
	logLevel := logger.Warn
	if cfg.Server.Environment == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("✅ Lesson database connected")

	return db, nil
}

// ApplyMigrations brings the lesson_documents schema up to date from the
// migrations directory and returns the number of migrations applied.
func ApplyMigrations(db *gorm.DB) (int, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get database object: %w", err)
	}

	source := &migrate.FileMigrationSource{Dir: MigrationsDir}
	n, err := migrate.Exec(sqlDB, Dialect, source, migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}
	return n, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("✅ Lesson database connection closed")
	return nil
}
