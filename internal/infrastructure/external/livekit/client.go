package livekit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/livekit/protocol/auth"
	livekit "github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"
)

// Client wraps the LiveKit operations the lesson service needs
type Client interface {
	EnsureRoom(ctx context.Context, name string) error
	GenerateToken(identity, roomName, participantName string, options *TokenOptions) (string, error)
}

// TokenOptions holds options for generating access token
type TokenOptions struct {
	ValidFor       time.Duration
	CanPublish     bool
	CanSubscribe   bool
	CanPublishData bool
	RoomJoin       bool
	Metadata       string
}

// DefaultTokenOptions matches the grants the web client expects: a short
// lived token with publish, subscribe and data permissions.
func DefaultTokenOptions() *TokenOptions {
	return &TokenOptions{
		ValidFor:       5 * time.Minute,
		CanPublish:     true,
		CanSubscribe:   true,
		CanPublishData: true,
		RoomJoin:       true,
		Metadata:       `{"role":"user"}`,
	}
}

// realClient is the real LiveKit client implementation
type realClient struct {
	roomClient *lksdk.RoomServiceClient
	apiKey     string
	apiSecret  string
	url        string
}

// NewClient creates a new LiveKit client
func NewClient(url, apiKey, apiSecret string, useMock bool) Client {
	if useMock {
		return &mockClient{
			url:       url,
			apiKey:    apiKey,
			apiSecret: apiSecret,
		}
	}

	roomClient := lksdk.NewRoomServiceClient(url, apiKey, apiSecret)
	return &realClient{
		roomClient: roomClient,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		url:        url,
	}
}

// EnsureRoom creates the room if it does not exist yet. CreateRoom is
// idempotent on the LiveKit side, so no existence check is needed.
func (c *realClient) EnsureRoom(ctx context.Context, name string) error {
	req := &livekit.CreateRoomRequest{
		Name:             name,
		EmptyTimeout:     300, // 5 minutes
		DepartureTimeout: 30,  // 30 seconds
	}

	if _, err := c.roomClient.CreateRoom(ctx, req); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// GenerateToken generates an access token for joining a room
func (c *realClient) GenerateToken(identity, roomName, participantName string, options *TokenOptions) (string, error) {
	return generateToken(c.apiKey, c.apiSecret, identity, roomName, participantName, options)
}

// mockClient is a mock implementation for testing
type mockClient struct {
	url       string
	apiKey    string
	apiSecret string
}

// EnsureRoom (mock) simulates room creation
func (m *mockClient) EnsureRoom(ctx context.Context, name string) error {
	return nil
}

// GenerateToken (mock) uses real auth for consistency
func (m *mockClient) GenerateToken(identity, roomName, participantName string, options *TokenOptions) (string, error) {
	return generateToken(m.apiKey, m.apiSecret, identity, roomName, participantName, options)
}

func generateToken(apiKey, apiSecret, identity, roomName, participantName string, options *TokenOptions) (string, error) {
	if options == nil {
		options = DefaultTokenOptions()
	}

	at := auth.NewAccessToken(apiKey, apiSecret)
	grant := &auth.VideoGrant{
		RoomJoin:       options.RoomJoin,
		Room:           roomName,
		CanPublish:     &options.CanPublish,
		CanSubscribe:   &options.CanSubscribe,
		CanPublishData: &options.CanPublishData,
	}

	at.AddGrant(grant).
		SetIdentity(identity).
		SetName(participantName).
		SetValidFor(options.ValidFor)
	if options.Metadata != "" {
		at.SetMetadata(options.Metadata)
	}

	token, err := at.ToJWT()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// NewParticipantIdentity generates a unique identity for an anonymous
// participant joining the chat room.
func NewParticipantIdentity() string {
	return "user-" + uuid.New().String()[:8]
}
