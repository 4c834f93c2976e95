package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/jsliwa/fishcards/pkg/api"
)

// APIError carries the server's error payload alongside the HTTP status.
type APIError struct {
	StatusCode int
	Message    string
	Details    []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Client is a typed HTTP client for the FishCards API. Read requests retry
// per the configured policy; mutations run exactly once so a timed-out
// request can never be applied twice.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retry      RetryPolicy
	authToken  string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) { c.retry = p }
}

func WithAuthToken(token string) Option {
	return func(c *Client) { c.authToken = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		retry:      DefaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAuthToken swaps the bearer token used for subsequent requests.
func (c *Client) SetAuthToken(token string) {
	c.authToken = token
}

func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
	return req, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	var payload api.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
		apiErr.Details = payload.Details
	}
	return apiErr
}

// do executes the request, retrying per policy when retryable is true. The
// request body is re-encoded for each attempt via the factory func.
func (c *Client) do(ctx context.Context, retryable bool, build func() (*http.Request, error), out interface{}) error {
	attempts := 1
	if retryable {
		attempts = c.retry.MaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := c.retry.wait(ctx, attempt); err != nil {
			return err
		}

		req, err := build()
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if retryable {
				continue
			}
			return err
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			defer resp.Body.Close()
			if out == nil || resp.StatusCode == http.StatusNoContent {
				io.Copy(io.Discard, resp.Body)
				return nil
			}
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("decoding response: %w", err)
			}
			return nil
		}

		apiErr := decodeAPIError(resp)
		resp.Body.Close()
		lastErr = apiErr
		if retryable && c.retry.Retryable(resp.StatusCode) {
			continue
		}
		return apiErr
	}
	return lastErr
}

// CreateFlashcard persists a new flashcard.
func (c *Client) CreateFlashcard(ctx context.Context, cmd api.CreateFlashcardDTO) (*api.FlashcardResponseDTO, error) {
	var resp api.FlashcardResponseDTO
	err := c.do(ctx, false, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, "/api/flashcards", cmd)
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListFlashcards fetches a page of the user's flashcards.
func (c *Client) ListFlashcards(ctx context.Context, query api.GetFlashcardsQueryDTO) (*api.FlashcardsListDTO, error) {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.SortBy != "" {
		values.Set("sortBy", query.SortBy)
	}
	if query.SortOrder != "" {
		values.Set("sortOrder", query.SortOrder)
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	if query.IsAiGenerated != nil {
		values.Set("isAiGenerated", strconv.FormatBool(*query.IsAiGenerated))
	}

	path := "/api/flashcards"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp api.FlashcardsListDTO
	err := c.do(ctx, true, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, path, nil)
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetFlashcard fetches a single flashcard by ID.
func (c *Client) GetFlashcard(ctx context.Context, id uuid.UUID) (*api.FlashcardResponseDTO, error) {
	var resp api.FlashcardResponseDTO
	err := c.do(ctx, true, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, "/api/flashcards/"+id.String(), nil)
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateFlashcard applies a partial update.
func (c *Client) UpdateFlashcard(ctx context.Context, id uuid.UUID, cmd api.UpdateFlashcardDTO) (*api.FlashcardResponseDTO, error) {
	var resp api.FlashcardResponseDTO
	err := c.do(ctx, false, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPatch, "/api/flashcards/"+id.String(), cmd)
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteFlashcard soft-deletes a flashcard.
func (c *Client) DeleteFlashcard(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, false, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodDelete, "/api/flashcards/"+id.String(), nil)
	}, nil)
}

// GenerateSuggestions asks the server to produce AI flashcard suggestions
// for the given source text. Generation is a read in retry terms: nothing
// is persisted server-side, so repeating it is safe.
func (c *Client) GenerateSuggestions(ctx context.Context, sourceText string) (*api.AiFlashcardSuggestionsDTO, error) {
	body := api.GenerateAiFlashcardsDTO{SourceText: sourceText}
	var resp api.AiFlashcardSuggestionsDTO
	err := c.do(ctx, true, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, "/api/flashcards/generate-ai", body)
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitContactForm stores a contact submission.
func (c *Client) SubmitContactForm(ctx context.Context, cmd api.CreateContactSubmissionDTO) (*api.ContactSubmissionResponseDTO, error) {
	var resp api.ContactSubmissionResponseDTO
	err := c.do(ctx, false, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, "/api/contact-submissions", cmd)
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout asks the server to clear the session cookie.
func (c *Client) Logout(ctx context.Context) (*api.LogoutResponseDTO, error) {
	var resp api.LogoutResponseDTO
	err := c.do(ctx, false, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, "/api/auth/logout", nil)
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
