package repository

import (
	"github.com/jsliwa/fishcards/internal/model"
	"gorm.io/gorm"
)

type ContactSubmissionRepository interface {
	Create(submission *model.ContactSubmission) error
}

type contactSubmissionRepository struct {
	db *gorm.DB
}

func NewContactSubmissionRepository(db *gorm.DB) ContactSubmissionRepository {
	return &contactSubmissionRepository{db: db}
}

func (r *contactSubmissionRepository) Create(submission *model.ContactSubmission) error {
	return r.db.Create(submission).Error
}
