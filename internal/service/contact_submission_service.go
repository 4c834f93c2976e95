package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jinzhu/copier"
	"github.com/jsliwa/fishcards/internal/dto"
	"github.com/jsliwa/fishcards/internal/model"
	"github.com/jsliwa/fishcards/internal/repository"
	"github.com/rs/zerolog/log"
)

var (
	ErrDuplicateSubmission = errors.New("duplicate submission detected")
	ErrInvalidSubmission   = errors.New("submission violates database constraints")
	ErrSubmissionDenied    = errors.New("access denied")
)

// Postgres error classes surfaced by the BaaS schema.
const (
	pgUniqueViolation       = "23505"
	pgCheckViolation        = "23514"
	pgInsufficientPrivilege = "42501"
)

type ContactSubmissionService interface {
	Submit(cmd dto.CreateContactSubmissionDTO, userID *uuid.UUID) (*dto.ContactSubmissionResponseDTO, error)
}

type contactSubmissionService struct {
	repo repository.ContactSubmissionRepository
}

func NewContactSubmissionService(repo repository.ContactSubmissionRepository) ContactSubmissionService {
	return &contactSubmissionService{repo: repo}
}

func (s *contactSubmissionService) Submit(cmd dto.CreateContactSubmissionDTO, userID *uuid.UUID) (*dto.ContactSubmissionResponseDTO, error) {
	submission := model.ContactSubmission{
		UserID:       userID,
		EmailAddress: cmd.EmailAddress,
		Subject:      cmd.Subject,
		MessageBody:  cmd.MessageBody,
	}

	if err := s.repo.Create(&submission); err != nil {
		log.Error().Err(err).Str("email", cmd.EmailAddress).Msg("Failed to create contact submission")
		return nil, mapSubmissionError(err)
	}

	var resp dto.ContactSubmissionResponseDTO
	if err := copier.Copy(&resp, &submission); err != nil {
		return nil, fmt.Errorf("error preparing contact submission response: %w", err)
	}
	return &resp, nil
}

func mapSubmissionError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicateSubmission
		case pgCheckViolation:
			return ErrInvalidSubmission
		case pgInsufficientPrivilege:
			return ErrSubmissionDenied
		}
	}
	return fmt.Errorf("database error creating contact submission: %w", err)
}
