package repository

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jsliwa/fishcards/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&model.Flashcard{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedFlashcard(t *testing.T, repo FlashcardRepository, userID uuid.UUID, question string) *model.Flashcard {
	t.Helper()
	card := &model.Flashcard{
		UserID:   userID,
		Question: question,
		Answer:   "some answer",
	}
	if err := repo.Create(card); err != nil {
		t.Fatalf("failed to seed flashcard: %v", err)
	}
	return card
}

func TestCreateAssignsID(t *testing.T) {
	repo := NewFlashcardRepository(setupTestDB(t))
	card := seedFlashcard(t, repo, uuid.New(), "What is a goroutine?")
	if card.ID == uuid.Nil {
		t.Fatal("expected a generated ID, got uuid.Nil")
	}
}

func TestFindByIDScopesToOwner(t *testing.T) {
	repo := NewFlashcardRepository(setupTestDB(t))
	owner := uuid.New()
	card := seedFlashcard(t, repo, owner, "What is a channel?")

	if _, err := repo.FindByID(owner, card.ID); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}

	if _, err := repo.FindByID(uuid.New(), card.ID); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound for foreign user, got %v", err)
	}
}

func TestSearchEscapesWildcards(t *testing.T) {
	repo := NewFlashcardRepository(setupTestDB(t))
	userID := uuid.New()
	seedFlashcard(t, repo, userID, "Is Go 100% garbage collected?")
	seedFlashcard(t, repo, userID, "Is Go 1000 times faster?")
	seedFlashcard(t, repo, userID, "What is snake_case?")
	seedFlashcard(t, repo, userID, "What is snakeXcase?")

	cards, total, err := repo.List(userID, FlashcardListQuery{
		Search: "100%", SortColumn: "created_at", Limit: 10,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(cards) != 1 {
		t.Fatalf("expected exactly one match for literal %%, got %d", total)
	}
	if cards[0].Question != "Is Go 100% garbage collected?" {
		t.Fatalf("unexpected match: %q", cards[0].Question)
	}

	cards, total, err = repo.List(userID, FlashcardListQuery{
		Search: "snake_", SortColumn: "created_at", Limit: 10,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || cards[0].Question != "What is snake_case?" {
		t.Fatalf("underscore should match literally, got %d rows", total)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	repo := NewFlashcardRepository(setupTestDB(t))
	userID := uuid.New()
	seedFlashcard(t, repo, userID, "What does HTTP stand for?")

	_, total, err := repo.List(userID, FlashcardListQuery{
		Search: "http", SortColumn: "created_at", Limit: 10,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected case-insensitive match, got %d rows", total)
	}
}

func TestListPaginationAndSort(t *testing.T) {
	repo := NewFlashcardRepository(setupTestDB(t))
	userID := uuid.New()
	for i := 0; i < 25; i++ {
		seedFlashcard(t, repo, userID, fmt.Sprintf("Question %02d", i))
	}

	cards, total, err := repo.List(userID, FlashcardListQuery{
		SortColumn: "question", SortDesc: false, Offset: 20, Limit: 10,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 25 {
		t.Fatalf("expected total 25, got %d", total)
	}
	if len(cards) != 5 {
		t.Fatalf("expected 5 rows on the last page, got %d", len(cards))
	}
	if cards[0].Question != "Question 20" {
		t.Fatalf("unexpected first row: %q", cards[0].Question)
	}

	cards, _, err = repo.List(userID, FlashcardListQuery{
		SortColumn: "question", SortDesc: true, Limit: 1,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if cards[0].Question != "Question 24" {
		t.Fatalf("descending sort should lead with the last question, got %q", cards[0].Question)
	}
}

func TestListFiltersAiGenerated(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFlashcardRepository(db)
	userID := uuid.New()
	source := "some source text"
	aiCard := &model.Flashcard{UserID: userID, Question: "AI question here", Answer: "a", IsAiGenerated: true, SourceTextForAi: &source}
	if err := repo.Create(aiCard); err != nil {
		t.Fatalf("failed to create AI card: %v", err)
	}
	seedFlashcard(t, repo, userID, "Manual question here")

	isAi := true
	cards, total, err := repo.List(userID, FlashcardListQuery{
		IsAiGenerated: &isAi, SortColumn: "created_at", Limit: 10,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || !cards[0].IsAiGenerated {
		t.Fatalf("expected only the AI card, got %d rows", total)
	}
}

func TestUpdateFieldsRowsAffected(t *testing.T) {
	repo := NewFlashcardRepository(setupTestDB(t))
	owner := uuid.New()
	card := seedFlashcard(t, repo, owner, "Original question?")

	affected, err := repo.UpdateFields(owner, card.ID, map[string]interface{}{"question": "Updated question?"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}

	affected, err = repo.UpdateFields(uuid.New(), card.ID, map[string]interface{}{"question": "Hijacked?"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("foreign user update should affect no rows, got %d", affected)
	}
}

func TestSoftDeleteExcludesFromReadsAndWrites(t *testing.T) {
	repo := NewFlashcardRepository(setupTestDB(t))
	owner := uuid.New()
	card := seedFlashcard(t, repo, owner, "Will be deleted?")

	affected, err := repo.SoftDelete(owner, card.ID)
	if err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}

	if _, err := repo.FindByID(owner, card.ID); err != gorm.ErrRecordNotFound {
		t.Fatalf("deleted card should be invisible, got %v", err)
	}

	_, total, err := repo.List(owner, FlashcardListQuery{SortColumn: "created_at", Limit: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("deleted card should not be counted, got %d", total)
	}

	affected, err = repo.UpdateFields(owner, card.ID, map[string]interface{}{"question": "Resurrected?"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("deleted card should reject updates, got %d rows affected", affected)
	}

	affected, err = repo.SoftDelete(owner, card.ID)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("second delete should be a no-op, got %d rows affected", affected)
	}
}
