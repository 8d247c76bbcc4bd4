package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RogutKuba/assemblyai-hackathon/internal/domain/repositories"
)

// FileStore keeps one markdown file per room id under a data directory.
// Writes go to a temp file first and are renamed into place, so readers
// never observe a half-written document.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if missing and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create lesson data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads the full document for the room
func (s *FileStore) Load(_ context.Context, roomID string) (string, error) {
	b, err := os.ReadFile(s.path(roomID))
	if err != nil {
		if os.IsNotExist(err) {
			return "", repositories.ErrLessonNotFound
		}
		return "", fmt.Errorf("failed to read lesson file: %w", err)
	}
	return string(b), nil
}

// Save overwrites the document for the room atomically
func (s *FileStore) Save(_ context.Context, roomID string, content string) error {
	tmp, err := os.CreateTemp(s.dir, roomID+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp lesson file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write lesson file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close lesson file: %w", err)
	}

	if err := os.Rename(tmpName, s.path(roomID)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace lesson file: %w", err)
	}
	return nil
}

func (s *FileStore) path(roomID string) string {
	return filepath.Join(s.dir, roomID+".md")
}
