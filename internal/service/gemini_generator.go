package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/jsliwa/fishcards/config"
	"github.com/jsliwa/fishcards/internal/dto"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

type geminiGeneratorService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiGeneratorService is the alternate provider used when only a Gemini
// credential is configured.
func NewGeminiGeneratorService(cfg *config.Config) (AiGeneratorService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.AI.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiGeneratorService{
		client: client,
		model:  client.GenerativeModel(geminiModel),
	}, nil
}

// Close releases the underlying API connection. Wired into application
// shutdown by cmd/main.go.
func (s *geminiGeneratorService) Close() error {
	return s.client.Close()
}

func (s *geminiGeneratorService) Generate(ctx context.Context, sourceText string) ([]dto.AiFlashcardSuggestionItem, error) {
	if err := validateSourceText(sourceText); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout*time.Second)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, genai.Text(buildGeneratePrompt(sourceText)))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during flashcard generation")
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", ErrAiServiceUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrAiServiceError, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts")
		return nil, fmt.Errorf("%w: empty candidate list", ErrAiInvalidResponse)
	}

	content := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			content += string(txt)
		}
	}
	if content == "" {
		return nil, fmt.Errorf("%w: no text content", ErrAiInvalidResponse)
	}

	return parseSuggestions(content, geminiModel)
}
