package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "asm-key")
	t.Setenv("OPENAI_API_KEY", "oai-key")
	t.Setenv("LIVEKIT_URL", "wss://example.livekit.cloud")
	t.Setenv("LIVEKIT_API_KEY", "lk-key")
	t.Setenv("LIVEKIT_API_SECRET", "lk-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("expected default port 8000, got %q", cfg.Server.Port)
	}
	if cfg.Lesson.SummaryInterval != 5*time.Second {
		t.Errorf("expected 5s summary interval, got %v", cfg.Lesson.SummaryInterval)
	}
	if cfg.Lesson.SummaryTimeout != 30*time.Second {
		t.Errorf("expected 30s summary timeout, got %v", cfg.Lesson.SummaryTimeout)
	}
	if cfg.Lesson.MinContentLength != 5 {
		t.Errorf("expected minimum content length 5, got %d", cfg.Lesson.MinContentLength)
	}
	if cfg.Storage.Type != "file" {
		t.Errorf("expected file storage by default, got %q", cfg.Storage.Type)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("expected default model gpt-4o-mini, got %q", cfg.OpenAI.Model)
	}
}

func TestLoad_MissingRequiredKeys(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when OPENAI_API_KEY is missing")
	}
}

func TestLoad_RejectsUnknownStorageType(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORAGE_TYPE", "s3")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unknown storage type")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LESSON_SUMMARY_INTERVAL", "2s")
	t.Setenv("LESSON_MIN_CONTENT_LENGTH", "10")
	t.Setenv("STORAGE_TYPE", "redis")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Lesson.SummaryInterval != 2*time.Second {
		t.Errorf("expected 2s interval, got %v", cfg.Lesson.SummaryInterval)
	}
	if cfg.Lesson.MinContentLength != 10 {
		t.Errorf("expected minimum content length 10, got %d", cfg.Lesson.MinContentLength)
	}
	if cfg.Storage.Type != "redis" {
		t.Errorf("expected redis storage, got %q", cfg.Storage.Type)
	}
}
