package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jsliwa/fishcards/pkg/api"
)

func fastRetry() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, Factor: 2, MaxDelay: 4 * time.Millisecond}
}

func emptyList(w http.ResponseWriter) {
	json.NewEncoder(w).Encode(api.FlashcardsListDTO{
		Data:       []api.FlashcardListItemDTO{},
		Pagination: api.PaginationDetailsDTO{CurrentPage: 1, TotalPages: 0, TotalItems: 0, Limit: 10},
	})
}

func TestListRetriesOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		emptyList(w)
	}))
	defer server.Close()

	c := New(server.URL, WithRetryPolicy(fastRetry()))
	resp, err := c.ListFlashcards(context.Background(), api.GetFlashcardsQueryDTO{})
	if err != nil {
		t.Fatalf("list failed after retries: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	if resp.Pagination.CurrentPage != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestListGivesUpAfterMaxAttempts(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := New(server.URL, WithRetryPolicy(fastRetry()))
	_, err := c.ListFlashcards(context.Background(), api.GetFlashcardsQueryDTO{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected a 503 APIError, got %v", err)
	}
}

func TestClientErrorsAreDefinitive(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(api.ErrorResponse{Message: "Flashcard not found."})
	}))
	defer server.Close()

	c := New(server.URL, WithRetryPolicy(fastRetry()))
	_, err := c.GetFlashcard(context.Background(), uuid.New())
	if attempts != 1 {
		t.Fatalf("a 404 must not be retried, got %d attempts", attempts)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "Flashcard not found." {
		t.Fatalf("server message must be surfaced, got %q", apiErr.Message)
	}
}

func TestMutationsNeverRetry(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL, WithRetryPolicy(fastRetry()))

	_, err := c.CreateFlashcard(context.Background(), api.CreateFlashcardDTO{
		Question: "Will this double-write?",
		Answer:   "Never.",
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if attempts != 1 {
		t.Fatalf("create must run exactly once, got %d attempts", attempts)
	}

	attempts = 0
	if err := c.DeleteFlashcard(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected an error")
	}
	if attempts != 1 {
		t.Fatalf("delete must run exactly once, got %d attempts", attempts)
	}
}

func TestAuthTokenAttached(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		emptyList(w)
	}))
	defer server.Close()

	c := New(server.URL, WithAuthToken("session-token"))
	if _, err := c.ListFlashcards(context.Background(), api.GetFlashcardsQueryDTO{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if gotAuth != "Bearer session-token" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestListQueryEncoding(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		emptyList(w)
	}))
	defer server.Close()

	isAi := true
	c := New(server.URL)
	_, err := c.ListFlashcards(context.Background(), api.GetFlashcardsQueryDTO{
		Page:          2,
		Limit:         5,
		SortBy:        "question",
		SortOrder:     "asc",
		Search:        "goroutine",
		IsAiGenerated: &isAi,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/?"+gotQuery, nil)
	q := req.URL.Query()
	if q.Get("page") != "2" || q.Get("limit") != "5" || q.Get("sortBy") != "question" ||
		q.Get("sortOrder") != "asc" || q.Get("search") != "goroutine" || q.Get("isAiGenerated") != "true" {
		t.Fatalf("query params lost in encoding: %q", gotQuery)
	}
}

func TestDeleteHandlesNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := New(server.URL)
	if err := c.DeleteFlashcard(context.Background(), uuid.New()); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}
