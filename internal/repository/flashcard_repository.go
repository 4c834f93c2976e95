package repository

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jsliwa/fishcards/internal/model"
	"gorm.io/gorm"
)

// FlashcardListQuery carries the validated, defaulted list parameters.
// SortColumn must be one of the whitelisted database columns.
type FlashcardListQuery struct {
	Search        string
	IsAiGenerated *bool
	SortColumn    string
	SortDesc      bool
	Offset        int
	Limit         int
}

type FlashcardRepository interface {
	Create(flashcard *model.Flashcard) error
	FindByID(userID, id uuid.UUID) (*model.Flashcard, error)
	List(userID uuid.UUID, q FlashcardListQuery) ([]model.Flashcard, int64, error)
	UpdateFields(userID, id uuid.UUID, fields map[string]interface{}) (int64, error)
	SoftDelete(userID, id uuid.UUID) (int64, error)
}

type flashcardRepository struct {
	db *gorm.DB
}

func NewFlashcardRepository(db *gorm.DB) FlashcardRepository {
	return &flashcardRepository{db: db}
}

func (r *flashcardRepository) Create(flashcard *model.Flashcard) error {
	return r.db.Create(flashcard).Error
}

func (r *flashcardRepository) FindByID(userID, id uuid.UUID) (*model.Flashcard, error) {
	var flashcard model.Flashcard
	err := r.db.
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
		First(&flashcard).Error
	if err != nil {
		return nil, err
	}
	return &flashcard, nil
}

// escapeLikePattern escapes %, _ and \ so a search term matches only literal
// occurrences, never pattern wildcards.
func escapeLikePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

func (r *flashcardRepository) List(userID uuid.UUID, q FlashcardListQuery) ([]model.Flashcard, int64, error) {
	base := r.db.Model(&model.Flashcard{}).
		Where("user_id = ? AND is_deleted = ?", userID, false)

	if term := strings.TrimSpace(q.Search); term != "" {
		pattern := "%" + escapeLikePattern(strings.ToLower(term)) + "%"
		base = base.Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern)
	}
	if q.IsAiGenerated != nil {
		base = base.Where("is_ai_generated = ?", *q.IsAiGenerated)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := q.SortColumn
	if q.SortDesc {
		order += " DESC"
	} else {
		order += " ASC"
	}

	var flashcards []model.Flashcard
	err := base.Order(order).Offset(q.Offset).Limit(q.Limit).Find(&flashcards).Error
	if err != nil {
		return nil, 0, err
	}
	return flashcards, total, nil
}

// UpdateFields updates only the supplied columns, scoped to the owner and to
// rows not yet soft-deleted. Returns the number of rows affected; zero means
// the row does not exist, belongs to someone else, or is already deleted.
func (r *flashcardRepository) UpdateFields(userID, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&model.Flashcard{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *flashcardRepository) SoftDelete(userID, id uuid.UUID) (int64, error) {
	res := r.db.Model(&model.Flashcard{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
		Update("is_deleted", true)
	return res.RowsAffected, res.Error
}
