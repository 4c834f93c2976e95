package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jsliwa/fishcards/config"
	"github.com/jsliwa/fishcards/internal/dto"
	"github.com/rs/zerolog/log"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type openAIGeneratorService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewOpenAIGeneratorService builds the chat-completions backed generator. The
// bearer credential is read from configuration at startup.
func NewOpenAIGeneratorService(cfg *config.Config) AiGeneratorService {
	return &openAIGeneratorService{
		apiKey:  cfg.AI.OpenAIApiKey,
		baseURL: cfg.AI.OpenAIBaseURL,
		model:   cfg.AI.OpenAIModel,
		client:  &http.Client{Timeout: generateTimeout * time.Second},
	}
}

func (s *openAIGeneratorService) Generate(ctx context.Context, sourceText string) ([]dto.AiFlashcardSuggestionItem, error) {
	if err := validateSourceText(sourceText); err != nil {
		return nil, err
	}

	started := time.Now()
	log.Info().Int("sourceTextLength", len(sourceText)).Str("model", s.model).Msg("Starting AI flashcard generation")

	reqBody := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are an expert at creating educational flashcards. Your task is to create questions and answers based on the provided text.",
			},
			{Role: "user", Content: buildGeneratePrompt(sourceText)},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		// Timeouts and transport failures are outages, not upstream answers.
		log.Error().Err(err).Dur("elapsed", time.Since(started)).Msg("Chat completion request failed")
		return nil, fmt.Errorf("%w: %v", ErrAiServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		log.Error().Int("status", resp.StatusCode).Msg("Chat completion upstream server error")
		return nil, fmt.Errorf("%w: upstream status %d", ErrAiServiceUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Msg("Chat completion upstream error")
		return nil, fmt.Errorf("%w: upstream status %d", ErrAiServiceError, resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("%w: undecodable body", ErrAiInvalidResponse)
	}
	if completion.Error != nil {
		log.Error().Str("upstreamError", completion.Error.Message).Msg("Chat completion answered with an error payload")
		return nil, fmt.Errorf("%w: %s", ErrAiServiceError, completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices returned", ErrAiInvalidResponse)
	}

	modelUsed := completion.Model
	if modelUsed == "" {
		modelUsed = s.model
	}

	suggestions, err := parseSuggestions(completion.Choices[0].Message.Content, modelUsed)
	if err != nil {
		return nil, err
	}

	log.Info().Int("suggestionCount", len(suggestions)).Dur("elapsed", time.Since(started)).Msg("Generated AI flashcard suggestions")
	return suggestions, nil
}
