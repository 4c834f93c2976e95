package client

import (
	"errors"
	"testing"

	"github.com/jsliwa/fishcards/pkg/api"
)

func sampleSuggestion() api.AiFlashcardSuggestionItem {
	return api.AiFlashcardSuggestionItem{
		SuggestedQuestion: "What is photosynthesis?",
		SuggestedAnswer:   "Light-driven glucose synthesis.",
		AiModelUsed:       "test-model",
	}
}

func TestReviewItemEditAndDiscard(t *testing.T) {
	item := NewReviewItem(sampleSuggestion())

	if item.Edited() {
		t.Fatal("fresh item must not be marked edited")
	}

	if err := item.SetQuestion("What exactly is photosynthesis?"); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if !item.Edited() {
		t.Fatal("item should be marked edited")
	}

	item.Discard()
	if item.Question() != "What is photosynthesis?" {
		t.Fatalf("discard must restore the original, got %q", item.Question())
	}
	if item.Edited() {
		t.Fatal("discard must clear the edited flag")
	}
}

func TestReviewItemCommitMovesBaseline(t *testing.T) {
	item := NewReviewItem(sampleSuggestion())

	if err := item.SetQuestion("How do plants make sugar?"); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	item.Commit()
	if item.Edited() {
		t.Fatal("commit must clear the edited flag")
	}

	if err := item.SetQuestion("Something else entirely?"); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	item.Discard()
	if item.Question() != "How do plants make sugar?" {
		t.Fatalf("discard must restore the committed baseline, got %q", item.Question())
	}
}

func TestReviewItemLengthRules(t *testing.T) {
	item := NewReviewItem(sampleSuggestion())

	if err := item.SetQuestion("Hm?"); !errors.Is(err, ErrQuestionTooShort) {
		t.Fatalf("expected ErrQuestionTooShort, got %v", err)
	}
	if err := item.SetQuestion("    ok    "); !errors.Is(err, ErrQuestionTooShort) {
		t.Fatalf("whitespace must not count toward the minimum, got %v", err)
	}
	if err := item.SetAnswer("no"); !errors.Is(err, ErrAnswerTooShort) {
		t.Fatalf("expected ErrAnswerTooShort, got %v", err)
	}

	if item.Question() != "What is photosynthesis?" {
		t.Fatal("rejected edits must not touch the buffer")
	}
}

func TestReviewItemToCreateCommand(t *testing.T) {
	item := NewReviewItem(sampleSuggestion())
	if err := item.SetAnswer("Plants turning light into sugar."); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	cmd := item.ToCreateCommand("the original source text")
	if !cmd.IsAiGenerated {
		t.Fatal("accepted suggestions are AI generated")
	}
	if cmd.SourceTextForAi == nil || *cmd.SourceTextForAi != "the original source text" {
		t.Fatal("source text must travel with the command")
	}
	if cmd.Answer != "Plants turning light into sugar." {
		t.Fatalf("edited answer must be used, got %q", cmd.Answer)
	}
	if cmd.Question != "What is photosynthesis?" {
		t.Fatalf("unedited question must be the original, got %q", cmd.Question)
	}
}

func TestReviewListRemove(t *testing.T) {
	list := NewReviewList([]api.AiFlashcardSuggestionItem{
		sampleSuggestion(),
		{SuggestedQuestion: "What is respiration?", SuggestedAnswer: "Energy release.", AiModelUsed: "test-model"},
	})

	if list.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", list.Len())
	}
	if !list.Remove(0) {
		t.Fatal("remove of a valid index must succeed")
	}
	if list.Len() != 1 || list.Item(0).Question() != "What is respiration?" {
		t.Fatal("remaining items must keep their order")
	}
	if list.Remove(5) {
		t.Fatal("remove of a bad index must fail")
	}
	if list.Item(5) != nil {
		t.Fatal("out-of-range item must be nil")
	}
}
