package client

import (
	"errors"
	"strings"

	"github.com/jsliwa/fishcards/pkg/api"
)

const (
	minQuestionLength = 5
	minAnswerLength   = 3
)

var (
	// ErrQuestionTooShort rejects an edited question under the minimum length.
	ErrQuestionTooShort = errors.New("question must be at least 5 characters")

	// ErrAnswerTooShort rejects an edited answer under the minimum length.
	ErrAnswerTooShort = errors.New("answer must be at least 3 characters")
)

// ReviewItem wraps a suggestion with an edit buffer. Edits stay in the
// buffer until committed, so discarding always restores the AI's original
// wording.
type ReviewItem struct {
	original api.AiFlashcardSuggestionItem
	question string
	answer   string
	edited   bool
}

func NewReviewItem(suggestion api.AiFlashcardSuggestionItem) *ReviewItem {
	return &ReviewItem{
		original: suggestion,
		question: suggestion.SuggestedQuestion,
		answer:   suggestion.SuggestedAnswer,
	}
}

func (r *ReviewItem) Question() string { return r.question }
func (r *ReviewItem) Answer() string   { return r.answer }
func (r *ReviewItem) Edited() bool     { return r.edited }

// SetQuestion stages a new question, enforcing the minimum length.
func (r *ReviewItem) SetQuestion(question string) error {
	if len(strings.TrimSpace(question)) < minQuestionLength {
		return ErrQuestionTooShort
	}
	r.question = question
	r.edited = true
	return nil
}

// SetAnswer stages a new answer, enforcing the minimum length.
func (r *ReviewItem) SetAnswer(answer string) error {
	if len(strings.TrimSpace(answer)) < minAnswerLength {
		return ErrAnswerTooShort
	}
	r.answer = answer
	r.edited = true
	return nil
}

// Commit makes the staged edits the new baseline; a later Discard restores
// to this point rather than the AI's wording.
func (r *ReviewItem) Commit() {
	r.original.SuggestedQuestion = r.question
	r.original.SuggestedAnswer = r.answer
	r.edited = false
}

// Discard reverts any staged edits to the original suggestion.
func (r *ReviewItem) Discard() {
	r.question = r.original.SuggestedQuestion
	r.answer = r.original.SuggestedAnswer
	r.edited = false
}

// ToCreateCommand builds the creation payload from the current buffer.
// sourceText is the text the suggestion was generated from.
func (r *ReviewItem) ToCreateCommand(sourceText string) api.CreateFlashcardDTO {
	return api.CreateFlashcardDTO{
		Question:        r.question,
		Answer:          r.answer,
		IsAiGenerated:   true,
		SourceTextForAi: &sourceText,
	}
}

// ReviewList holds the editable review state for a generated batch.
type ReviewList struct {
	items []*ReviewItem
}

func NewReviewList(suggestions []api.AiFlashcardSuggestionItem) *ReviewList {
	items := make([]*ReviewItem, 0, len(suggestions))
	for _, s := range suggestions {
		items = append(items, NewReviewItem(s))
	}
	return &ReviewList{items: items}
}

func (l *ReviewList) Len() int { return len(l.items) }

// Item returns the review item at idx, or nil when out of range.
func (l *ReviewList) Item(idx int) *ReviewItem {
	if idx < 0 || idx >= len(l.items) {
		return nil
	}
	return l.items[idx]
}

// Remove drops the item at idx, preserving order of the rest.
func (l *ReviewList) Remove(idx int) bool {
	if idx < 0 || idx >= len(l.items) {
		return false
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return true
}
