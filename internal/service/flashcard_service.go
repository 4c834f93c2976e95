package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jinzhu/copier"
	"github.com/jsliwa/fishcards/internal/dto"
	"github.com/jsliwa/fishcards/internal/model"
	"github.com/jsliwa/fishcards/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrFlashcardNotFound covers missing rows, rows owned by someone else and
	// soft-deleted rows alike; ownership mismatches are never reported as a
	// distinct forbidden condition on the update/delete paths.
	ErrFlashcardNotFound = errors.New("flashcard not found")

	// ErrNoFieldsToUpdate rejects a partial update carrying neither question
	// nor answer, before any database access.
	ErrNoFieldsToUpdate = errors.New("at least one of question or answer must be provided")

	// ErrMissingSourceText rejects an AI-flagged creation without source text.
	ErrMissingSourceText = errors.New("sourceTextForAi is required if isAiGenerated is true")

	// ErrAccessDenied surfaces a database-level privilege rejection on delete.
	ErrAccessDenied = errors.New("access denied")
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type FlashcardService interface {
	Create(cmd dto.CreateFlashcardDTO, userID uuid.UUID) (*dto.FlashcardResponseDTO, error)
	GetByID(userID, id uuid.UUID) (*dto.FlashcardResponseDTO, error)
	List(userID uuid.UUID, query dto.GetFlashcardsQueryDTO) (*dto.FlashcardsListDTO, error)
	Update(userID, id uuid.UUID, cmd dto.UpdateFlashcardDTO) (*dto.FlashcardResponseDTO, error)
	SoftDelete(userID, id uuid.UUID) error
}

type flashcardService struct {
	repo repository.FlashcardRepository
}

func NewFlashcardService(repo repository.FlashcardRepository) FlashcardService {
	return &flashcardService{repo: repo}
}

func (s *flashcardService) Create(cmd dto.CreateFlashcardDTO, userID uuid.UUID) (*dto.FlashcardResponseDTO, error) {
	flashcard := model.Flashcard{
		UserID:        userID,
		Question:      cmd.Question,
		Answer:        cmd.Answer,
		IsAiGenerated: cmd.IsAiGenerated,
	}

	if cmd.IsAiGenerated {
		if cmd.SourceTextForAi == nil || *cmd.SourceTextForAi == "" {
			return nil, ErrMissingSourceText
		}
		flashcard.SourceTextForAi = cmd.SourceTextForAi
		now := time.Now().UTC()
		flashcard.AiAcceptedAt = &now
	}

	if err := s.repo.Create(&flashcard); err != nil {
		log.Error().Err(err).Str("userID", userID.String()).Msg("Failed to create flashcard")
		return nil, fmt.Errorf("database error creating flashcard: %w", err)
	}

	var resp dto.FlashcardResponseDTO
	if err := copier.Copy(&resp, &flashcard); err != nil {
		return nil, fmt.Errorf("error preparing flashcard response: %w", err)
	}
	return &resp, nil
}

func (s *flashcardService) GetByID(userID, id uuid.UUID) (*dto.FlashcardResponseDTO, error) {
	flashcard, err := s.repo.FindByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlashcardNotFound
		}
		log.Error().Err(err).Str("flashcardID", id.String()).Msg("Failed to fetch flashcard")
		return nil, fmt.Errorf("database error fetching flashcard: %w", err)
	}

	var resp dto.FlashcardResponseDTO
	if err := copier.Copy(&resp, flashcard); err != nil {
		return nil, fmt.Errorf("error preparing flashcard response: %w", err)
	}
	return &resp, nil
}

func sortByToColumn(sortBy string) string {
	switch sortBy {
	case "updatedAt":
		return "updated_at"
	case "question":
		return "question"
	default:
		return "created_at"
	}
}

func (s *flashcardService) List(userID uuid.UUID, query dto.GetFlashcardsQueryDTO) (*dto.FlashcardsListDTO, error) {
	page := query.Page
	if page < 1 {
		page = defaultPage
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	// Newest first unless the caller asked for ascending order explicitly.
	sortDesc := query.SortOrder != "asc"

	listQuery := repository.FlashcardListQuery{
		Search:        query.Search,
		IsAiGenerated: query.IsAiGenerated,
		SortColumn:    sortByToColumn(query.SortBy),
		SortDesc:      sortDesc,
		Offset:        (page - 1) * limit,
		Limit:         limit,
	}

	flashcards, total, err := s.repo.List(userID, listQuery)
	if err != nil {
		log.Error().Err(err).Str("userID", userID.String()).Msg("Failed to list flashcards")
		return nil, fmt.Errorf("database error listing flashcards: %w", err)
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	if totalPages > 0 && page > totalPages {
		log.Warn().Int("page", page).Int("totalPages", totalPages).Msg("Requested page exceeds total pages")
		flashcards = nil
	}

	items := make([]dto.FlashcardListItemDTO, 0, len(flashcards))
	for i := range flashcards {
		var item dto.FlashcardListItemDTO
		if err := copier.Copy(&item, &flashcards[i]); err != nil {
			return nil, fmt.Errorf("error preparing flashcard list response: %w", err)
		}
		items = append(items, item)
	}

	return &dto.FlashcardsListDTO{
		Data: items,
		Pagination: dto.PaginationDetailsDTO{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  total,
			Limit:       limit,
		},
	}, nil
}

func (s *flashcardService) Update(userID, id uuid.UUID, cmd dto.UpdateFlashcardDTO) (*dto.FlashcardResponseDTO, error) {
	fields := map[string]interface{}{}
	if cmd.Question != nil {
		fields["question"] = *cmd.Question
	}
	if cmd.Answer != nil {
		fields["answer"] = *cmd.Answer
	}
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	affected, err := s.repo.UpdateFields(userID, id, fields)
	if err != nil {
		log.Error().Err(err).Str("flashcardID", id.String()).Msg("Failed to update flashcard")
		return nil, fmt.Errorf("database error updating flashcard: %w", err)
	}
	if affected == 0 {
		return nil, ErrFlashcardNotFound
	}

	return s.GetByID(userID, id)
}

func (s *flashcardService) SoftDelete(userID, id uuid.UUID) error {
	affected, err := s.repo.SoftDelete(userID, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgInsufficientPrivilege {
			return ErrAccessDenied
		}
		log.Error().Err(err).Str("flashcardID", id.String()).Msg("Failed to soft-delete flashcard")
		return fmt.Errorf("database error deleting flashcard: %w", err)
	}
	if affected == 0 {
		return ErrFlashcardNotFound
	}
	return nil
}
