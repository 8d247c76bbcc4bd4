package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/RogutKuba/assemblyai-hackathon/pkg/config"
)

// AssemblyAIClient is a minimal AssemblyAI client for the realtime token API
type AssemblyAIClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("ASSEMBLYAI_API_URL")
		if base == "" {
			base = "https://api.assemblyai.com"
		}
	}

	return &AssemblyAIClient{
		apiKey:  apiKey,
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// TokenRequest is payload for /v2/realtime/token
type TokenRequest struct {
	ExpiresIn int `json:"expires_in"`
}

// TokenResponse is minimal response
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateRealtimeToken requests a temporary token the browser can use to open
// a realtime transcription stream without exposing the account API key.
func (c *AssemblyAIClient) CreateRealtimeToken(ctx context.Context, expiresIn int) (string, error) {
	payload := TokenRequest{ExpiresIn: expiresIn}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/v2/realtime/token"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("assemblyai returned status %d", resp.StatusCode)
	}

	var tr TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", err
	}
	if tr.Token == "" {
		return "", fmt.Errorf("empty token from assemblyai")
	}
	return tr.Token, nil
}
