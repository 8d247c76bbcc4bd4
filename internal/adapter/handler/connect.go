package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/RogutKuba/assemblyai-hackathon/errors"
	dto "github.com/RogutKuba/assemblyai-hackathon/internal/adapter/dto/lesson"
	"github.com/RogutKuba/assemblyai-hackathon/internal/infrastructure/external/livekit"
	"github.com/RogutKuba/assemblyai-hackathon/pkg/ai"
	"github.com/RogutKuba/assemblyai-hackathon/pkg/config"
)

// chatRoomName is the shared LiveKit room the voice agent feature uses
const chatRoomName = "chat-room"

// Connect hands out the credentials the browser needs to stream audio and
// join the voice chat room.
type Connect struct {
	asmClient     *ai.AssemblyAIClient
	livekitClient livekit.Client
	cfg           *config.Config
	logger        *zap.Logger
}

// NewConnectHandler creates a new connect handler
func NewConnectHandler(asmClient *ai.AssemblyAIClient, livekitClient livekit.Client, cfg *config.Config, logger *zap.Logger) *Connect {
	return &Connect{
		asmClient:     asmClient,
		livekitClient: livekitClient,
		cfg:           cfg,
		logger:        logger,
	}
}

// TranscribeToken handles GET /transcribe/token
// @Summary      Create a realtime transcription token
// @Description  Returns a temporary AssemblyAI token the browser uses to open a realtime transcription stream
// @Tags         Connect
// @Produce      json
// @Success      200  {object}  lesson.TokenResponse  "Temporary token"
// @Failure      500  {object}  map[string]interface{}  "Token creation failed"
// @Router       /transcribe/token [get]
func (h *Connect) TranscribeToken(c echo.Context) error {
	token, err := h.asmClient.CreateRealtimeToken(c.Request().Context(), h.cfg.Assembly.TokenExpiresIn)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrAITokenFailed(err))
	}

	return HandleSuccess(h.logger, c, dto.TokenResponse{Token: token})
}

// LiveKitConnection handles GET /livekit/connection
// @Summary      Get LiveKit connection details
// @Description  Generates an anonymous participant identity and a short-lived token for the chat room
// @Tags         Connect
// @Produce      json
// @Success      200  {object}  lesson.ConnectionDetails  "Connection details"
// @Failure      500  {object}  map[string]interface{}  "Token generation failed"
// @Router       /livekit/connection [get]
func (h *Connect) LiveKitConnection(c echo.Context) error {
	participantName := livekit.NewParticipantIdentity()

	if err := h.livekitClient.EnsureRoom(c.Request().Context(), chatRoomName); err != nil {
		return HandleError(h.logger, c, errors.ErrLiveKitFailed("create room", err))
	}

	token, err := h.livekitClient.GenerateToken(participantName, chatRoomName, participantName, livekit.DefaultTokenOptions())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrLiveKitFailed("generate token", err))
	}

	return HandleSuccess(h.logger, c, dto.ConnectionDetails{
		ServerURL:        h.cfg.LiveKit.URL,
		RoomName:         chatRoomName,
		ParticipantName:  participantName,
		ParticipantToken: token,
	})
}
