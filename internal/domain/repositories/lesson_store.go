package repositories

import (
	"context"
	"errors"
)

// ErrLessonNotFound is returned by Load when no document has ever been
// persisted for a room id. Callers distinguish it from an empty document.
var ErrLessonNotFound = errors.New("lesson document not found")

// LessonStore persists one markdown document per room id. Save overwrites
// the full document content; partial appends never reach the store.
type LessonStore interface {
	// Load returns the full document for the room, or ErrLessonNotFound.
	Load(ctx context.Context, roomID string) (string, error)

	// Save overwrites the document for the room with the full content.
	Save(ctx context.Context, roomID string, content string) error
}
