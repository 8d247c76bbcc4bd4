package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"

	"github.com/RogutKuba/assemblyai-hackathon/pkg/config"
)

const lessonSystemPrompt = `You are an expert educational content creator specializing in converting live spoken transcripts into well-structured lesson notes in real-time. Your task is to:

1. Analyze the latest transcript segment in context of the total transcript and existing lesson notes
2. If the latest segment is too short or lacks sufficient context to form meaningful notes, return null to wait for more content
3. When there is enough content, extract key concepts, definitions, examples, and important points
4. Format the content in clear, organized markdown with headers, bullet points, code blocks for technical content, and emphasis on important terms
5. Maintain consistency with existing lesson notes and avoid redundancy with previously covered content
6. Add appropriate spacing: two newlines when beginning a new major section, single newlines for minor transitions

Special handling for lesson start: if the total transcript is empty you are at the start of a new lesson; wait to understand the main topic before generating notes, but be more lenient with content length for the first summary.

Remember: you are processing live transcripts, so it is better to wait for more context than to generate incomplete or potentially incorrect notes.

Respond with a JSON object of the form {"new_lesson_notes": string | null} where new_lesson_notes is the markdown to append to the current lesson notes, or null when more context is needed.`

// OpenAIClient generates incremental lesson notes from live transcripts
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIClient creates an OpenAI client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg != nil && cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := "gpt-4o-mini"
	temperature := float32(0.7)
	if cfg != nil {
		if cfg.Model != "" {
			model = cfg.Model
		}
		if cfg.Temperature > 0 {
			temperature = float32(cfg.Temperature)
		}
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		temperature: temperature,
	}
}

// lessonNotesResponse is the structured completion payload
type lessonNotesResponse struct {
	NewLessonNotes *string `json:"new_lesson_notes"`
}

// GenerateLessonNotes asks the model for the next increment of lesson notes.
// Returns "" with a nil error when the model signals it needs more context.
func (c *OpenAIClient) GenerateLessonNotes(ctx context.Context, totalTranscript, latestTranscript, currentNotes string) (string, error) {
	prompt := fmt.Sprintf(
		"<total-transcript>%s</total-transcript>\n<latest-transcript>%s</latest-transcript>\n<current-lesson-notes>%s</current-lesson-notes>",
		totalTranscript, latestTranscript, currentNotes,
	)

	var notes string
	completeFn := func() error {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       c.model,
			Temperature: c.temperature,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: lessonSystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		})
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("empty response from openai")
		}

		var parsed lessonNotesResponse
		content := strings.TrimSpace(resp.Choices[0].Message.Content)
		if err := json.Unmarshal([]byte(content), &parsed); err != nil {
			// A malformed body will not improve on retry with the same prompt
			return backoff.Permanent(fmt.Errorf("parse lesson notes response: %w", err))
		}

		if parsed.NewLessonNotes != nil {
			notes = *parsed.NewLessonNotes
		}
		return nil
	}

	// Retry transient failures; the scheduler bounds the whole round with its
	// own timeout, so keep the retry window short.
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 8 * time.Second
	bo.MaxElapsedTime = 20 * time.Second

	if err := backoff.Retry(completeFn, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return notes, nil
}
