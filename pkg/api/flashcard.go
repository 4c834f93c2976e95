// Package api holds the wire types shared by the FishCards server and the
// Go client in pkg/client.
package api

import (
	"time"

	"github.com/google/uuid"
)

// CreateFlashcardDTO is the request body for POST /api/flashcards.
type CreateFlashcardDTO struct {
	Question        string  `json:"question" binding:"required,min=5"`
	Answer          string  `json:"answer" binding:"required,min=3"`
	IsAiGenerated   bool    `json:"isAiGenerated"`
	SourceTextForAi *string `json:"sourceTextForAi"`
}

// UpdateFlashcardDTO is the request body for PATCH /api/flashcards/{id}.
// Both fields are optional but at least one must be present.
type UpdateFlashcardDTO struct {
	Question *string `json:"question" binding:"omitempty,min=5"`
	Answer   *string `json:"answer" binding:"omitempty,min=3"`
}

// GetFlashcardsQueryDTO holds the query params for GET /api/flashcards.
type GetFlashcardsQueryDTO struct {
	Page          int    `form:"page" binding:"omitempty,min=1"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=100"`
	SortBy        string `form:"sortBy" binding:"omitempty,oneof=createdAt updatedAt question"`
	SortOrder     string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Search        string `form:"search"`
	IsAiGenerated *bool  `form:"isAiGenerated"`
}

type FlashcardResponseDTO struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"userId"`
	Question        string     `json:"question"`
	Answer          string     `json:"answer"`
	IsAiGenerated   bool       `json:"isAiGenerated"`
	SourceTextForAi *string    `json:"sourceTextForAi,omitempty"`
	AiAcceptedAt    *time.Time `json:"aiAcceptedAt,omitempty"`
	IsDeleted       bool       `json:"isDeleted"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// FlashcardListItemDTO is the list-response subset of FlashcardResponseDTO.
type FlashcardListItemDTO struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	Question      string     `json:"question"`
	Answer        string     `json:"answer"`
	IsAiGenerated bool       `json:"isAiGenerated"`
	AiAcceptedAt  *time.Time `json:"aiAcceptedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type PaginationDetailsDTO struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	Limit       int   `json:"limit"`
}

type FlashcardsListDTO struct {
	Data       []FlashcardListItemDTO `json:"data"`
	Pagination PaginationDetailsDTO   `json:"pagination"`
}
