package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jsliwa/fishcards/config"
	"github.com/jsliwa/fishcards/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	minSourceTextLength = 1000
	maxSourceTextLength = 10000
	generateTimeout     = 30 // seconds
)

var (
	// ErrSourceTextLength is reported before any network call is made.
	ErrSourceTextLength = fmt.Errorf("source text must be between %d and %d characters", minSourceTextLength, maxSourceTextLength)

	// ErrAiServiceUnavailable covers timeouts, transport failures and upstream
	// 5xx responses; distinct from an upstream error answer.
	ErrAiServiceUnavailable = errors.New("ai service unavailable")

	// ErrAiServiceError covers non-2xx answers that are not outages.
	ErrAiServiceError = errors.New("ai service error")

	// ErrAiInvalidResponse covers answers the provider returned successfully
	// but that do not parse into a valid suggestion batch.
	ErrAiInvalidResponse = errors.New("invalid response from ai service")
)

// AiGeneratorService produces flashcard suggestions from source text. The
// suggestions are transient; nothing is persisted until the user accepts one.
type AiGeneratorService interface {
	Generate(ctx context.Context, sourceText string) ([]dto.AiFlashcardSuggestionItem, error)
}

// NewAiGeneratorService picks a provider from configuration: the
// OpenAI-compatible endpoint when its key is set, Gemini otherwise, and the
// deterministic mock only in development with no credential at all.
func NewAiGeneratorService(cfg *config.Config) (AiGeneratorService, error) {
	switch {
	case cfg.AI.OpenAIApiKey != "":
		return NewOpenAIGeneratorService(cfg), nil
	case cfg.AI.GeminiApiKey != "":
		return NewGeminiGeneratorService(cfg)
	case cfg.IsDevelopment():
		log.Warn().Msg("No AI credential configured, using mock generator")
		return NewMockGeneratorService(), nil
	default:
		return nil, errors.New("no AI credential configured")
	}
}

func validateSourceText(sourceText string) error {
	if len(sourceText) < minSourceTextLength || len(sourceText) > maxSourceTextLength {
		return ErrSourceTextLength
	}
	return nil
}

func buildGeneratePrompt(sourceText string) string {
	var b strings.Builder
	b.WriteString("Based on the source text below, generate 5-8 educational flashcards. Each flashcard must contain:\n")
	b.WriteString("- A question (specific, clear and testing comprehension)\n")
	b.WriteString("- An answer (accurate and concise)\n\n")
	b.WriteString("Answer with a JSON array of objects with the fields \"question\" and \"answer\".\n\n")
	b.WriteString("Example response format:\n")
	b.WriteString("[\n  {\n    \"question\": \"What is photosynthesis?\",\n")
	b.WriteString("    \"answer\": \"The process by which plants use sunlight to produce glucose from carbon dioxide and water.\"\n  }\n]\n\n")
	b.WriteString("Source text:\n")
	b.WriteString(sourceText)
	b.WriteString("\n\nResponse (JSON only):")
	return b.String()
}

type rawSuggestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// parseSuggestions extracts a JSON array embedded in free-form model output,
// tolerant of surrounding prose. Any item missing a field invalidates the
// whole batch rather than being silently dropped.
func parseSuggestions(content, modelUsed string) ([]dto.AiFlashcardSuggestionItem, error) {
	content = strings.TrimSpace(content)

	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	jsonText := content
	if start != -1 && end > start {
		jsonText = content[start : end+1]
	}

	var raw []rawSuggestion
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		log.Error().Str("content", content).Msg("Failed to parse AI response as JSON array")
		return nil, fmt.Errorf("%w: not a JSON array", ErrAiInvalidResponse)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty suggestion list", ErrAiInvalidResponse)
	}

	suggestions := make([]dto.AiFlashcardSuggestionItem, 0, len(raw))
	for i, item := range raw {
		question := strings.TrimSpace(item.Question)
		answer := strings.TrimSpace(item.Answer)
		if question == "" || answer == "" {
			return nil, fmt.Errorf("%w: item %d is missing question or answer", ErrAiInvalidResponse, i)
		}
		suggestions = append(suggestions, dto.AiFlashcardSuggestionItem{
			SuggestedQuestion: question,
			SuggestedAnswer:   answer,
			AiModelUsed:       modelUsed,
		})
	}

	if len(suggestions) < 5 || len(suggestions) > 8 {
		log.Warn().Int("count", len(suggestions)).Msg("AI returned a suggestion count outside the requested 5-8 range")
	}
	return suggestions, nil
}
