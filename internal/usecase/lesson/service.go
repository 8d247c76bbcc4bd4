package lesson

import (
	"context"
	"errors"
	"regexp"
	"sync"

	"go.uber.org/zap"

	apperrors "github.com/RogutKuba/assemblyai-hackathon/errors"
	"github.com/RogutKuba/assemblyai-hackathon/internal/domain/repositories"
	"github.com/RogutKuba/assemblyai-hackathon/pkg/config"
)

// roomIDPattern constrains room ids to a storage-safe character set
var roomIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidRoomID reports whether the id is safe to use as a storage key
func ValidRoomID(roomID string) bool {
	return roomIDPattern.MatchString(roomID)
}

// Service routes transcript events into per-room lesson sessions and
// exposes the persisted lesson documents.
type Service interface {
	// Submit ingests a transcript fragment for a room. Fire-and-forget:
	// summary round failures never surface here, only an unsafe room id does.
	Submit(ctx context.Context, roomID, text string, isPartial bool) error

	// Read returns the persisted lesson document for a room
	Read(ctx context.Context, roomID string) (string, error)

	// Close stops every room's scheduler timer
	Close()
}

type lessonService struct {
	summarizer Summarizer
	store      repositories.LessonStore
	cfg        *config.Config
	logger     *zap.Logger

	mu       sync.Mutex
	sessions map[string]*session
	closed   bool
}

// NewLessonService constructs a new lesson service
func NewLessonService(summarizer Summarizer, store repositories.LessonStore, cfg *config.Config, logger *zap.Logger) Service {
	return &lessonService{
		summarizer: summarizer,
		store:      store,
		cfg:        cfg,
		logger:     logger,
		sessions:   make(map[string]*session),
	}
}

// Submit routes a transcript fragment to the room's session, creating the
// session on first contact with that room id.
func (s *lessonService) Submit(ctx context.Context, roomID, text string, isPartial bool) error {
	if !ValidRoomID(roomID) {
		return apperrors.ErrInvalidRoomID(roomID)
	}

	sess, err := s.forRoom(ctx, roomID)
	if err != nil {
		return err
	}
	sess.submit(text, isPartial)
	return nil
}

// Read returns the full persisted document for a room id
func (s *lessonService) Read(ctx context.Context, roomID string) (string, error) {
	if !ValidRoomID(roomID) {
		return "", apperrors.ErrInvalidRoomID(roomID)
	}

	content, err := s.store.Load(ctx, roomID)
	if err != nil {
		if errors.Is(err, repositories.ErrLessonNotFound) {
			return "", apperrors.ErrLessonNotFound(roomID)
		}
		return "", apperrors.ErrStorageFailed("load lesson", err)
	}
	return content, nil
}

// Close stops all room schedulers. New submissions after Close are rejected.
func (s *lessonService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for _, sess := range s.sessions {
		sess.stop()
	}
}

// forRoom returns the existing session for the room or lazily creates one,
// loading any previously persisted document exactly once.
func (s *lessonService) forRoom(ctx context.Context, roomID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, apperrors.ErrInternal(errors.New("lesson service is shut down"))
	}
	if sess, ok := s.sessions[roomID]; ok {
		return sess, nil
	}

	sess := newSession(roomID, s.summarizer, s.store, s.logger, sessionConfig{
		interval:   s.cfg.Lesson.SummaryInterval,
		timeout:    s.cfg.Lesson.SummaryTimeout,
		minContent: s.cfg.Lesson.MinContentLength,
	})
	sess.loadNotes(ctx)
	s.sessions[roomID] = sess

	go sess.run()

	s.logger.Info("lesson session started",
		zap.String("room_id", roomID),
	)
	return sess, nil
}
