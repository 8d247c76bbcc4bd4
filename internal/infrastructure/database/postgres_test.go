package database

import (
	"strings"
	"testing"

	migrate "github.com/rubenv/sql-migrate"
)

func TestMigrationSourceParses(t *testing.T) {
	source := &migrate.FileMigrationSource{Dir: "../../../" + MigrationsDir}

	ms, err := source.FindMigrations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ms) == 0 {
		t.Fatal("expected at least one migration in the migrations directory")
	}

	first := ms[0]
	if first.Id != "0001_create_lesson_documents.sql" {
		t.Fatalf("unexpected first migration id %q", first.Id)
	}
	if len(first.Up) == 0 || len(first.Down) == 0 {
		t.Fatal("expected both Up and Down sections in the initial migration")
	}
	if !strings.Contains(first.Up[0], "lesson_documents") {
		t.Fatalf("expected the initial migration to create lesson_documents, got %q", first.Up[0])
	}
	if !strings.Contains(strings.Join(first.Up, "\n"), "room_id") {
		t.Fatal("expected a room_id column in the initial migration")
	}
}
