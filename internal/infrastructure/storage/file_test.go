package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RogutKuba/assemblyai-hackathon/internal/domain/repositories"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content := "# Lesson\n\n## Arrays\n- element order matters\n\némojis and unicode: ✓\n"
	if err := store.Save(context.Background(), "chat-room", content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load(context.Background(), "chat-room")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != content {
		t.Fatalf("expected byte-identical round trip, got %q", got)
	}
}

func TestFileStore_LoadMissingReturnsNotFound(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = store.Load(context.Background(), "never-saved")
	if !errors.Is(err, repositories.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
}

func TestFileStore_SaveOverwritesFully(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	if err := store.Save(ctx, "chat-room", "a much longer first version of the document"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(ctx, "chat-room", "short"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load(ctx, "chat-room")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "short" {
		t.Fatalf("expected the shorter document to fully replace the old one, got %q", got)
	}
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := store.Save(context.Background(), "chat-room", "content"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 || entries[0].Name() != "chat-room.md" {
		t.Fatalf("expected a single chat-room.md, got %v", entries)
	}
}

func TestFileStore_RoomsAreIsolated(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	if err := store.Save(ctx, "room-a", "notes for a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(ctx, "room-b", "notes for b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load(ctx, "room-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "notes for a" {
		t.Fatalf("expected room-a content untouched, got %q", got)
	}

	if _, err := os.Stat(filepath.Join(dir, "room-b.md")); err != nil {
		t.Fatalf("expected room-b.md on disk: %v", err)
	}
}
