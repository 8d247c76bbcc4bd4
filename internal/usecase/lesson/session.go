package lesson

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/RogutKuba/assemblyai-hackathon/internal/domain/repositories"
)

// Summarizer turns newly accumulated transcript into incremental markdown
// notes. An empty result with a nil error means "not enough context yet".
type Summarizer interface {
	GenerateLessonNotes(ctx context.Context, totalTranscript, latestTranscript, currentNotes string) (string, error)
}

// session holds all live state for one room: the transcript buffers, the
// notes document and the summary scheduler. Each session owns its own
// timer, so rooms never contend with each other's summarization cadence.
type session struct {
	roomID     string
	summarizer Summarizer
	store      repositories.LessonStore
	logger     *zap.Logger

	interval   time.Duration
	timeout    time.Duration
	minContent int

	// mu guards the buffers and the document. Mutations around the
	// summarizer call are short critical sections; the call itself runs
	// unlocked so submissions keep flowing during a round.
	mu         sync.Mutex
	confirmed  string // transcript already folded into the notes
	pending    string // finalized transcript awaiting summarization
	notes      string // full markdown document
	lastUpdate time.Time

	// summarizing is the per-room mutual exclusion guard: at most one
	// summarizer call in flight. CompareAndSwap keeps the invariant under
	// parallel ticks.
	summarizing atomic.Bool

	done     chan struct{}
	stopOnce sync.Once
}

func newSession(roomID string, summarizer Summarizer, store repositories.LessonStore, logger *zap.Logger, cfg sessionConfig) *session {
	return &session{
		roomID:     roomID,
		summarizer: summarizer,
		store:      store,
		logger:     logger,
		interval:   cfg.interval,
		timeout:    cfg.timeout,
		minContent: cfg.minContent,
		lastUpdate: time.Now(),
		done:       make(chan struct{}),
	}
}

type sessionConfig struct {
	interval   time.Duration
	timeout    time.Duration
	minContent int
}

// loadNotes seeds the in-memory document from the store. A missing
// document is a fresh lesson; a read failure is logged and treated the
// same so a storage hiccup never blocks transcript ingestion.
func (s *session) loadNotes(ctx context.Context) {
	content, err := s.store.Load(ctx, s.roomID)
	if err != nil {
		if err != repositories.ErrLessonNotFound {
			s.logger.Warn("failed to load existing lesson content",
				zap.String("room_id", s.roomID),
				zap.Error(err),
			)
		}
		return
	}

	s.mu.Lock()
	s.notes = content
	s.mu.Unlock()
}

// submit accepts a transcript fragment. Partial fragments only refresh the
// liveness timestamp; finalized text is appended verbatim to the pending
// buffer in arrival order.
func (s *session) submit(text string, isPartial bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastUpdate = time.Now()
	if isPartial {
		return
	}
	s.pending += text
}

// run drives the summary scheduler until stop is called
func (s *session) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.runRound(context.Background())
		}
	}
}

// stop cancels the room's scheduler timer
func (s *session) stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

// runRound executes one summarize-and-merge cycle. Rounds are strictly
// sequential per room; a tick that finds a round in flight is dropped,
// not queued, and the next eligible tick picks up everything accumulated
// in the meantime.
func (s *session) runRound(ctx context.Context) {
	if !s.summarizing.CompareAndSwap(false, true) {
		s.logger.Debug("skipping summary round: previous round still running",
			zap.String("room_id", s.roomID),
		)
		return
	}
	defer s.summarizing.Store(false)

	// Snapshot under lock. Only the snapshot is summarized; anything that
	// arrives while the round is in flight stays pending for the next one.
	s.mu.Lock()
	if len(s.pending) < s.minContent {
		pendingLen := len(s.pending)
		s.mu.Unlock()
		s.logger.Debug("skipping summary round: not enough new content",
			zap.String("room_id", s.roomID),
			zap.Int("pending_length", pendingLen),
		)
		return
	}
	roundInput := s.pending
	confirmed := s.confirmed
	currentNotes := s.notes
	s.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	summary, err := s.summarizer.GenerateLessonNotes(callCtx, confirmed, roundInput, currentNotes)
	if err != nil {
		// Round discarded with no state mutation; the pending buffer is
		// intact, so the next tick retries naturally.
		s.logger.Warn("summary round failed",
			zap.String("room_id", s.roomID),
			zap.Error(err),
		)
		return
	}
	if summary == "" {
		s.logger.Debug("summary round produced no content, waiting for more context",
			zap.String("room_id", s.roomID),
		)
		return
	}

	// Merge: the snapshot moves from pending to confirmed and the returned
	// markdown is appended to the document, all under one lock so the
	// clear and the merge are atomic with respect to each other.
	s.mu.Lock()
	s.confirmed += roundInput
	s.pending = s.pending[len(roundInput):]
	s.notes += summary
	fullNotes := s.notes
	s.mu.Unlock()

	if err := s.store.Save(ctx, s.roomID, fullNotes); err != nil {
		// The merge is already committed in memory; the next successful
		// round persists the full document again.
		s.logger.Error("failed to persist lesson notes",
			zap.String("room_id", s.roomID),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("lesson notes updated",
		zap.String("room_id", s.roomID),
		zap.Int("summarized_chars", len(roundInput)),
		zap.Int("document_length", len(fullNotes)),
	)
}

// state returns a copy of the transcript buffers, used by tests and the
// liveness endpoint.
func (s *session) state() (confirmed, pending, notes string, lastUpdate time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirmed, s.pending, s.notes, s.lastUpdate
}
