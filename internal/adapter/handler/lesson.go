package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/RogutKuba/assemblyai-hackathon/errors"
	dto "github.com/RogutKuba/assemblyai-hackathon/internal/adapter/dto/lesson"
	lessonUsecase "github.com/RogutKuba/assemblyai-hackathon/internal/usecase/lesson"
)

// Lesson handles lesson-related HTTP requests
type Lesson struct {
	svc    lessonUsecase.Service
	logger *zap.Logger
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(svc lessonUsecase.Service, logger *zap.Logger) *Lesson {
	return &Lesson{svc: svc, logger: logger}
}

// AddTranscript handles POST /lessons/transcripts
// @Summary      Ingest a transcript fragment
// @Description  Accepts a partial or final transcript fragment for a room. Final fragments feed the incremental lesson notes.
// @Tags         Lessons
// @Accept       json
// @Produce      json
// @Param        request  body      lesson.AddTranscriptRequest  true  "Transcript fragment"
// @Success      200      {object}  map[string]interface{}  "Fragment accepted"
// @Failure      400      {object}  map[string]interface{}  "Invalid payload or unsafe room id"
// @Router       /lessons/transcripts [post]
func (h *Lesson) AddTranscript(c echo.Context) error {
	var req dto.AddTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidRoomID(req.RoomID))
	}

	if err := h.svc.Submit(c.Request().Context(), req.RoomID, req.Transcript, req.IsPartial); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{"success": true})
}

// GetLesson handles GET /lessons/:id
// @Summary      Get lesson notes
// @Description  Returns the full markdown lesson document accumulated for a room
// @Tags         Lessons
// @Produce      plain
// @Param        id   path      string  true  "Room id"
// @Success      200  {string}  string  "Markdown lesson notes"
// @Failure      400  {object}  map[string]interface{}  "Unsafe room id"
// @Failure      404  {object}  map[string]interface{}  "No lesson for this room yet"
// @Router       /lessons/{id} [get]
func (h *Lesson) GetLesson(c echo.Context) error {
	roomID := c.Param("id")

	content, err := h.svc.Read(c.Request().Context(), roomID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(content))
}
