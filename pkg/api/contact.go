package api

import (
	"time"

	"github.com/google/uuid"
)

// CreateContactSubmissionDTO is the request body for POST /api/contact-submissions.
type CreateContactSubmissionDTO struct {
	EmailAddress string  `json:"emailAddress" binding:"required,email"`
	Subject      *string `json:"subject"`
	MessageBody  string  `json:"messageBody" binding:"required"`
}

type ContactSubmissionResponseDTO struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"userId,omitempty"`
	EmailAddress string     `json:"emailAddress"`
	Subject      *string    `json:"subject,omitempty"`
	MessageBody  string     `json:"messageBody"`
	SubmittedAt  time.Time  `json:"submittedAt"`
}
