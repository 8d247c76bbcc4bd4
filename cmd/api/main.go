package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/RogutKuba/assemblyai-hackathon/pkg/validator"

	"github.com/RogutKuba/assemblyai-hackathon/internal/adapter/handler"
	"github.com/RogutKuba/assemblyai-hackathon/internal/adapter/repository"
	"github.com/RogutKuba/assemblyai-hackathon/internal/domain/repositories"
	"github.com/RogutKuba/assemblyai-hackathon/internal/infrastructure/cache"
	"github.com/RogutKuba/assemblyai-hackathon/internal/infrastructure/database"
	"github.com/RogutKuba/assemblyai-hackathon/internal/infrastructure/external/livekit"
	"github.com/RogutKuba/assemblyai-hackathon/internal/infrastructure/storage"
	lessonuse "github.com/RogutKuba/assemblyai-hackathon/internal/usecase/lesson"
	pkgai "github.com/RogutKuba/assemblyai-hackathon/pkg/ai"
	"github.com/RogutKuba/assemblyai-hackathon/pkg/config"
)

// @title           Live Lesson Notes API
// @version         1.0
// @description     API for streaming lecture transcription into incremental markdown lesson notes

// @host      localhost:8000
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize lesson document store
	log.Printf("📦 Initializing %s lesson store...", cfg.Storage.Type)
	var lessonStore repositories.LessonStore
	switch cfg.Storage.Type {
	case "minio":
		store, err := storage.NewMinIOStore(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO store: %v", err)
		}
		lessonStore = store

	case "redis":
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		lessonStore = cache.NewRedisLessonStore(redisClient)

	case "postgres":
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.CloseDB(db)

		// Run migrations only when explicitly enabled in config.
		// Production deployments should manage schema via sql-migrate.
		if cfg.Database.AutoMigrate {
			if cfg.Server.Environment == "production" {
				log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
			}
			log.Println("🔄 Applying migrations (development only) ...")
			n, err := database.ApplyMigrations(db)
			if err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
			log.Printf("✅ Applied %d migration(s)", n)
		} else {
			log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
		}
		lessonStore = repository.NewLessonRepository(db)

	default:
		store, err := storage.NewFileStore(cfg.Lesson.DataDir)
		if err != nil {
			log.Fatalf("Failed to initialize file store: %v", err)
		}
		lessonStore = store
	}

	// Initialize AI clients
	log.Println("🤖 Initializing AI components...")
	asmClient := pkgai.NewAssemblyAIClient(&cfg.Assembly)
	openaiClient := pkgai.NewOpenAIClient(&cfg.OpenAI)

	// Initialize lesson service
	log.Println("📝 Initializing lesson service...")
	lessonService := lessonuse.NewLessonService(openaiClient, lessonStore, cfg, logger)

	// Initialize LiveKit client
	log.Println("🎥 Initializing LiveKit client...")
	livekitClient := livekit.NewClient(
		cfg.LiveKit.URL,
		cfg.LiveKit.APIKey,
		cfg.LiveKit.APISecret,
		cfg.LiveKit.UseMock,
	)
	if cfg.LiveKit.UseMock {
		log.Println("⚠️  LiveKit running in MOCK mode (no real server needed)")
	} else {
		log.Printf("✅ LiveKit connected to: %s", cfg.LiveKit.URL)
	}

	// Initialize handlers
	log.Println("🚪 Initializing handlers...")
	lessonHandler := handler.NewLessonHandler(lessonService, logger)
	connectHandler := handler.NewConnectHandler(asmClient, livekitClient, cfg, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, lessonHandler, connectHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	// Stop per-room summary timers before the process exits
	lessonService.Close()

	log.Println("✅ Server stopped gracefully")
}
