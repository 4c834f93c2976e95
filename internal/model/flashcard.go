package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Flashcard is a stored question/answer pair owned by a user. Deletion is a
// flag, not a row removal: list/update/delete paths filter on IsDeleted.
type Flashcard struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Question        string     `json:"question" gorm:"type:text;not null"`
	Answer          string     `json:"answer" gorm:"type:text;not null"`
	IsAiGenerated   bool       `json:"is_ai_generated" gorm:"not null;default:false"`
	SourceTextForAi *string    `json:"source_text_for_ai,omitempty" gorm:"type:text"`
	AiAcceptedAt    *time.Time `json:"ai_accepted_at,omitempty"`
	IsDeleted       bool       `json:"is_deleted" gorm:"not null;default:false;index"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (f *Flashcard) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
