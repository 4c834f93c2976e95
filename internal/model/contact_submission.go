package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactSubmission is append-only; no update or delete path exists.
type ContactSubmission struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`
	EmailAddress string     `json:"email_address" gorm:"not null"`
	Subject      *string    `json:"subject,omitempty"`
	MessageBody  string     `json:"message_body" gorm:"type:text;not null"`
	SubmittedAt  time.Time  `json:"submitted_at" gorm:"autoCreateTime"`
}

func (ContactSubmission) TableName() string {
	return "contact_form_submissions"
}

func (c *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
