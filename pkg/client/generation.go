package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jsliwa/fishcards/pkg/api"
)

// GenerationState tracks where a generation session is in its lifecycle.
type GenerationState string

const (
	StateIdle       GenerationState = "idle"
	StateGenerating GenerationState = "generating"
	StateSucceeded  GenerationState = "succeeded"
	StateFailed     GenerationState = "failed"
	StateCancelled  GenerationState = "cancelled"
)

const (
	slowRequestThreshold = 5 * time.Second
	acceptAllBatchSize   = 3
	acceptAllBatchDelay  = 250 * time.Millisecond
)

var (
	// ErrGenerationInProgress rejects Accept/Reject while a request is in flight.
	ErrGenerationInProgress = errors.New("generation is still in progress")

	// ErrNoSuggestion reports an accept or reject on an index that no longer exists.
	ErrNoSuggestion = errors.New("no suggestion at that position")
)

// Notifier receives user-facing session events. Implementations render
// toasts, spinners or log lines; all methods are called synchronously.
type Notifier interface {
	GenerationStarted(fromCache bool)
	GenerationSlow(elapsed time.Duration)
	GenerationFinished(count int, err error)
	SuggestionAccepted(question string)
	SuggestionRejected(question string)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) GenerationStarted(bool)        {}
func (NopNotifier) GenerationSlow(time.Duration)  {}
func (NopNotifier) GenerationFinished(int, error) {}
func (NopNotifier) SuggestionAccepted(string)     {}
func (NopNotifier) SuggestionRejected(string)     {}

// GenerationSession drives the generate-review-accept flow around the API
// client. Starting a new generation cancels any in-flight one, so at most
// one request is active per session.
type GenerationSession struct {
	client        *Client
	cache         *SuggestionCache
	notifier      Notifier
	slowThreshold time.Duration

	mu          sync.Mutex
	state       GenerationState
	sourceText  string
	suggestions []api.AiFlashcardSuggestionItem
	lastErr     error
	cancel      context.CancelFunc

	// epoch identifies the latest Generate call. A completion whose captured
	// epoch no longer matches has been superseded or cancelled and must not
	// touch session state.
	epoch uint64
}

func NewGenerationSession(client *Client, cache *SuggestionCache, notifier Notifier) *GenerationSession {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &GenerationSession{
		client:        client,
		cache:         cache,
		notifier:      notifier,
		slowThreshold: slowRequestThreshold,
		state:         StateIdle,
	}
}

func (s *GenerationSession) State() GenerationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *GenerationSession) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Suggestions returns a copy of the current review list.
func (s *GenerationSession) Suggestions() []api.AiFlashcardSuggestionItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.AiFlashcardSuggestionItem, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

// Generate produces suggestions for the source text, serving repeat requests
// from the cache. A generation started while another is in flight supersedes
// it; the superseded request's result is discarded.
func (s *GenerationSession) Generate(ctx context.Context, sourceText string) ([]api.AiFlashcardSuggestionItem, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.epoch++
	epoch := s.epoch

	if s.cache != nil {
		if cached, ok := s.cache.Get(sourceText); ok {
			s.state = StateSucceeded
			s.sourceText = sourceText
			s.suggestions = append([]api.AiFlashcardSuggestionItem(nil), cached...)
			s.lastErr = nil
			s.mu.Unlock()
			s.notifier.GenerationStarted(true)
			s.notifier.GenerationFinished(len(cached), nil)
			return cached, nil
		}
	}

	genCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = StateGenerating
	s.sourceText = sourceText
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.GenerationStarted(false)

	// Surface a slow-request notice once the call outlives the threshold.
	slowTimer := time.AfterFunc(s.slowThreshold, func() {
		s.notifier.GenerationSlow(s.slowThreshold)
	})
	defer slowTimer.Stop()

	resp, err := s.client.GenerateSuggestions(genCtx, sourceText)

	s.mu.Lock()

	// A newer Generate or an explicit Cancel replaced this request; whoever
	// did already owns the session state and the Notifier outcome.
	if s.epoch != epoch {
		s.mu.Unlock()
		return nil, context.Canceled
	}
	s.cancel = nil

	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.state = StateCancelled
		} else {
			s.state = StateFailed
			s.lastErr = err
		}
		s.mu.Unlock()
		s.notifier.GenerationFinished(0, err)
		return nil, err
	}

	suggestions := append([]api.AiFlashcardSuggestionItem(nil), resp.Suggestions...)
	s.state = StateSucceeded
	s.suggestions = suggestions
	s.mu.Unlock()

	if s.cache != nil {
		s.cache.Put(sourceText, suggestions)
	}
	s.notifier.GenerationFinished(len(suggestions), nil)
	return suggestions, nil
}

// Cancel aborts an in-flight generation, if any. Cancellation is a distinct
// outcome, reported through the Notifier like any other.
func (s *GenerationSession) Cancel() {
	s.mu.Lock()
	if s.cancel == nil {
		s.mu.Unlock()
		return
	}
	s.cancel()
	s.cancel = nil
	s.epoch++
	s.state = StateCancelled
	s.mu.Unlock()

	s.notifier.GenerationFinished(0, context.Canceled)
}

// AcceptSuggestion persists the suggestion at idx as a flashcard. The
// suggestion leaves the review list only after the server confirms the save,
// so a failed save keeps it available to retry.
func (s *GenerationSession) AcceptSuggestion(ctx context.Context, idx int) (*api.FlashcardResponseDTO, error) {
	s.mu.Lock()
	if s.state == StateGenerating {
		s.mu.Unlock()
		return nil, ErrGenerationInProgress
	}
	if idx < 0 || idx >= len(s.suggestions) {
		s.mu.Unlock()
		return nil, ErrNoSuggestion
	}
	suggestion := s.suggestions[idx]
	sourceText := s.sourceText
	s.mu.Unlock()

	created, err := s.client.CreateFlashcard(ctx, api.CreateFlashcardDTO{
		Question:        suggestion.SuggestedQuestion,
		Answer:          suggestion.SuggestedAnswer,
		IsAiGenerated:   true,
		SourceTextForAi: &sourceText,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.removeSuggestion(suggestion)
	s.mu.Unlock()

	s.notifier.SuggestionAccepted(suggestion.SuggestedQuestion)
	return created, nil
}

// RejectSuggestion drops the suggestion at idx. Rejection is local only and
// always succeeds for a valid index.
func (s *GenerationSession) RejectSuggestion(idx int) error {
	s.mu.Lock()
	if s.state == StateGenerating {
		s.mu.Unlock()
		return ErrGenerationInProgress
	}
	if idx < 0 || idx >= len(s.suggestions) {
		s.mu.Unlock()
		return ErrNoSuggestion
	}
	suggestion := s.suggestions[idx]
	s.suggestions = append(s.suggestions[:idx], s.suggestions[idx+1:]...)
	s.mu.Unlock()

	s.notifier.SuggestionRejected(suggestion.SuggestedQuestion)
	return nil
}

// AcceptAll persists every remaining suggestion in small batches with a
// short pause between them, keeping burst load on the server bounded. It
// stops at the first failure and reports how many were saved.
func (s *GenerationSession) AcceptAll(ctx context.Context) (int, error) {
	accepted := 0
	for {
		s.mu.Lock()
		remaining := len(s.suggestions)
		s.mu.Unlock()
		if remaining == 0 {
			return accepted, nil
		}

		batch := acceptAllBatchSize
		if remaining < batch {
			batch = remaining
		}
		for i := 0; i < batch; i++ {
			if _, err := s.AcceptSuggestion(ctx, 0); err != nil {
				return accepted, err
			}
			accepted++
		}

		s.mu.Lock()
		remaining = len(s.suggestions)
		s.mu.Unlock()
		if remaining == 0 {
			return accepted, nil
		}

		timer := time.NewTimer(acceptAllBatchDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return accepted, ctx.Err()
		case <-timer.C:
		}
	}
}

// removeSuggestion deletes the first matching entry; callers hold the lock.
func (s *GenerationSession) removeSuggestion(target api.AiFlashcardSuggestionItem) {
	for i, item := range s.suggestions {
		if item == target {
			s.suggestions = append(s.suggestions[:i], s.suggestions[i+1:]...)
			return
		}
	}
}
