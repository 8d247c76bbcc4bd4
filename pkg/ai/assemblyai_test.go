package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RogutKuba/assemblyai-hackathon/pkg/config"
)

func TestCreateRealtimeToken_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2/realtime/token" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "api-key" {
			t.Errorf("expected api key in Authorization header, got %q", got)
		}

		var req TokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.ExpiresIn != 3600 {
			t.Errorf("expected expires_in 3600, got %d", req.ExpiresIn)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"temp-abc"}`))
	}))
	defer srv.Close()

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "api-key", BaseURL: srv.URL})
	token, err := client.CreateRealtimeToken(context.Background(), 3600)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "temp-abc" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestCreateRealtimeToken_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "bad", BaseURL: srv.URL})
	if _, err := client.CreateRealtimeToken(context.Background(), 3600); err == nil {
		t.Fatal("expected an error for a 401 response")
	}
}

func TestCreateRealtimeToken_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "key", BaseURL: srv.URL})
	if _, err := client.CreateRealtimeToken(context.Background(), 3600); err == nil {
		t.Fatal("expected an error when the response has no token")
	}
}
