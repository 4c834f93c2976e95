// Package dto re-exports the wire types from pkg/api under the server's
// internal import path. The definitions live in pkg/api so that external
// consumers of pkg/client can name them.
package dto

import "github.com/jsliwa/fishcards/pkg/api"

type (
	CreateFlashcardDTO    = api.CreateFlashcardDTO
	UpdateFlashcardDTO    = api.UpdateFlashcardDTO
	GetFlashcardsQueryDTO = api.GetFlashcardsQueryDTO
	FlashcardResponseDTO  = api.FlashcardResponseDTO
	FlashcardListItemDTO  = api.FlashcardListItemDTO
	PaginationDetailsDTO  = api.PaginationDetailsDTO
	FlashcardsListDTO     = api.FlashcardsListDTO

	GenerateAiFlashcardsDTO   = api.GenerateAiFlashcardsDTO
	AiFlashcardSuggestionItem = api.AiFlashcardSuggestionItem
	AiFlashcardSuggestionsDTO = api.AiFlashcardSuggestionsDTO

	CreateContactSubmissionDTO   = api.CreateContactSubmissionDTO
	ContactSubmissionResponseDTO = api.ContactSubmissionResponseDTO

	ErrorResponse     = api.ErrorResponse
	LogoutResponseDTO = api.LogoutResponseDTO
)
