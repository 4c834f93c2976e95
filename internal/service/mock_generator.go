package service

import (
	"context"
	"fmt"

	"github.com/jsliwa/fishcards/internal/dto"
	"github.com/rs/zerolog/log"
)

const mockModelTag = "mock-ai-v1.0"

type mockGeneratorService struct{}

// NewMockGeneratorService returns deterministic placeholder suggestions
// without calling any external service. Used only in development when no
// credential is configured.
func NewMockGeneratorService() AiGeneratorService {
	return &mockGeneratorService{}
}

func (s *mockGeneratorService) Generate(ctx context.Context, sourceText string) ([]dto.AiFlashcardSuggestionItem, error) {
	if err := validateSourceText(sourceText); err != nil {
		return nil, err
	}

	log.Info().Int("sourceTextLength", len(sourceText)).Msg("Generating mock flashcard suggestions")

	prefix := sourceText
	if len(prefix) > 50 {
		prefix = prefix[:50]
	}

	return []dto.AiFlashcardSuggestionItem{
		{
			SuggestedQuestion: fmt.Sprintf("What is the main topic of the text beginning with: %q?", prefix),
			SuggestedAnswer:   "The main topic is the content presented in the provided source text.",
			AiModelUsed:       mockModelTag,
		},
		{
			SuggestedQuestion: "What key information does the provided material contain?",
			SuggestedAnswer:   "The material contains educational information that requires deeper analysis.",
			AiModelUsed:       mockModelTag,
		},
		{
			SuggestedQuestion: "Why is this topic relevant in a learning context?",
			SuggestedAnswer:   "The topic is relevant because it provides valuable knowledge in its field.",
			AiModelUsed:       mockModelTag,
		},
		{
			SuggestedQuestion: "What are the practical applications of this knowledge?",
			SuggestedAnswer:   "The knowledge can be applied in practice to better understand the subject.",
			AiModelUsed:       mockModelTag,
		},
		{
			SuggestedQuestion: "What should be remembered from this material?",
			SuggestedAnswer:   "The key concepts and ideas presented in the text should be remembered.",
			AiModelUsed:       mockModelTag,
		},
	}, nil
}
