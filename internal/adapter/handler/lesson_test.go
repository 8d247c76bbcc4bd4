package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/RogutKuba/assemblyai-hackathon/errors"
	pkgvalidator "github.com/RogutKuba/assemblyai-hackathon/pkg/validator"
)

// stubService records submissions and serves canned documents
type stubService struct {
	docs      map[string]string
	submits   []submission
	submitErr error
}

type submission struct {
	roomID    string
	text      string
	isPartial bool
}

func (s *stubService) Submit(_ context.Context, roomID, text string, isPartial bool) error {
	if s.submitErr != nil {
		return s.submitErr
	}
	s.submits = append(s.submits, submission{roomID: roomID, text: text, isPartial: isPartial})
	return nil
}

func (s *stubService) Read(_ context.Context, roomID string) (string, error) {
	content, ok := s.docs[roomID]
	if !ok {
		return "", apperrors.ErrLessonNotFound(roomID)
	}
	return content, nil
}

func (s *stubService) Close() {}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

func TestAddTranscript_AcceptsFinalFragment(t *testing.T) {
	e := newTestEcho()
	svc := &stubService{}
	h := NewLessonHandler(svc, zap.NewNop())

	body := `{"room_id":"chat-room","transcript":"Today we discuss arrays.","is_partial":false}`
	req := httptest.NewRequest(http.MethodPost, "/v1/lessons/transcripts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.AddTranscript(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if resp.Data["success"] != true {
		t.Fatalf("expected success payload, got %v", resp.Data)
	}

	if len(svc.submits) != 1 {
		t.Fatalf("expected one submission, got %d", len(svc.submits))
	}
	got := svc.submits[0]
	if got.roomID != "chat-room" || got.text != "Today we discuss arrays." || got.isPartial {
		t.Fatalf("unexpected submission: %+v", got)
	}
}

func TestAddTranscript_MissingRoomID(t *testing.T) {
	e := newTestEcho()
	svc := &stubService{}
	h := NewLessonHandler(svc, zap.NewNop())

	body := `{"transcript":"no room id"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/lessons/transcripts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.AddTranscript(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(svc.submits) != 0 {
		t.Fatal("expected no submission for an invalid payload")
	}
}

func TestAddTranscript_MalformedJSON(t *testing.T) {
	e := newTestEcho()
	h := NewLessonHandler(&stubService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/v1/lessons/transcripts", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.AddTranscript(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAddTranscript_UnsafeRoomIDFromService(t *testing.T) {
	e := newTestEcho()
	svc := &stubService{submitErr: apperrors.ErrInvalidRoomID("../bad")}
	h := NewLessonHandler(svc, zap.NewNop())

	body := `{"room_id":"../bad","transcript":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/lessons/transcripts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.AddTranscript(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetLesson_ReturnsMarkdown(t *testing.T) {
	e := newTestEcho()
	svc := &stubService{docs: map[string]string{
		"chat-room": "# Lesson\n\n## Arrays\n",
	}}
	h := NewLessonHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/v1/lessons/chat-room", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/lessons/:id")
	c.SetParamNames("id")
	c.SetParamValues("chat-room")

	if err := h.GetLesson(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/markdown") {
		t.Fatalf("expected markdown content type, got %q", ct)
	}
	if rec.Body.String() != "# Lesson\n\n## Arrays\n" {
		t.Fatalf("expected the raw document body, got %q", rec.Body.String())
	}
}

func TestGetLesson_NotFound(t *testing.T) {
	e := newTestEcho()
	h := NewLessonHandler(&stubService{docs: map[string]string{}}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/v1/lessons/unknown", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/lessons/:id")
	c.SetParamNames("id")
	c.SetParamValues("unknown")

	if err := h.GetLesson(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
