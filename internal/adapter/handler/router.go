package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/RogutKuba/assemblyai-hackathon/docs"
	"github.com/RogutKuba/assemblyai-hackathon/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	lessonHandler  *Lesson
	connectHandler *Connect
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, lessonHandler *Lesson, connectHandler *Connect) *Router {
	return &Router{
		cfg:            cfg,
		lessonHandler:  lessonHandler,
		connectHandler: connectHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupLessonRoutes(v1)
	rt.setupConnectRoutes(v1)
}

// setupLessonRoutes configures lesson ingestion and read routes
func (rt *Router) setupLessonRoutes(g *echo.Group) {
	lessonGroup := g.Group("/lessons")

	if rt.lessonHandler != nil {
		lessonGroup.POST("/transcripts", rt.lessonHandler.AddTranscript)
		lessonGroup.GET("/:id", rt.lessonHandler.GetLesson)
	} else {
		lessonGroup.POST("/transcripts", rt.notImplemented)
		lessonGroup.GET("/:id", rt.notImplemented)
	}
}

// setupConnectRoutes configures client credential routes
func (rt *Router) setupConnectRoutes(g *echo.Group) {
	if rt.connectHandler != nil {
		g.GET("/transcribe/token", rt.connectHandler.TranscribeToken)
		g.GET("/livekit/connection", rt.connectHandler.LiveKitConnection)
	} else {
		g.GET("/transcribe/token", rt.notImplemented)
		g.GET("/livekit/connection", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
