package api

// GenerateAiFlashcardsDTO is the request body for POST /api/flashcards/generate-ai.
// Length bounds are re-checked by the generator service before any network call.
type GenerateAiFlashcardsDTO struct {
	SourceText string `json:"sourceText" binding:"required"`
}

// AiFlashcardSuggestionItem is a transient AI-proposed question/answer pair.
// It is never persisted; accepting it creates a flashcard row.
type AiFlashcardSuggestionItem struct {
	SuggestedQuestion string `json:"suggestedQuestion"`
	SuggestedAnswer   string `json:"suggestedAnswer"`
	AiModelUsed       string `json:"aiModelUsed"`
}

type AiFlashcardSuggestionsDTO struct {
	Suggestions    []AiFlashcardSuggestionItem `json:"suggestions"`
	SourceTextEcho string                      `json:"sourceTextEcho"`
}
