package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"notes/internal/logging"
	"notes/internal/notes"
	"notes/internal/types"
)

const (
	defaultTimeout  = 10 * time.Second
	contentTypeJSON = "application/json"
	requestIDHeader = "X-Request-ID"
)

// Client talks to the notes REST backend rooted at baseURL.
type Client struct {
	baseURL    string
	http       *http.Client
	logger     logging.Logger
	normalizer notes.Normalizer
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithNormalizer(normalizer notes.Normalizer) Option {
	return func(c *Client) {
		c.normalizer = normalizer
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		http:       &http.Client{Timeout: defaultTimeout},
		logger:     logging.Nop(),
		normalizer: notes.NewNormalizer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestOption adjusts a single outgoing request after the defaults are set.
type RequestOption func(*http.Request)

// WithHeader sets a request header, replacing any default with the same name.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

func (c *Client) ListNotes(ctx context.Context) ([]types.Note, error) {
	value, err := c.Do(ctx, http.MethodGet, "/notes", nil)
	if err != nil {
		return nil, err
	}
	return c.normalizer.NormalizeList(value), nil
}

func (c *Client) GetNote(ctx context.Context, id types.NoteID) (*types.Note, error) {
	path, err := notePath(id)
	if err != nil {
		return nil, err
	}
	value, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return c.noteFrom(value), nil
}

func (c *Client) CreateNote(ctx context.Context, draft types.NoteDraft) (*types.Note, error) {
	value, err := c.Do(ctx, http.MethodPost, "/notes", draft)
	if err != nil {
		return nil, err
	}
	return c.noteFrom(value), nil
}

func (c *Client) UpdateNote(ctx context.Context, id types.NoteID, draft types.NoteDraft) (*types.Note, error) {
	path, err := notePath(id)
	if err != nil {
		return nil, err
	}
	value, err := c.Do(ctx, http.MethodPut, path, draft)
	if err != nil {
		return nil, err
	}
	return c.noteFrom(value), nil
}

// DeleteNote returns the deleted note when the backend echoes it, nil otherwise.
func (c *Client) DeleteNote(ctx context.Context, id types.NoteID) (*types.Note, error) {
	path, err := notePath(id)
	if err != nil {
		return nil, err
	}
	value, err := c.Do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return nil, err
	}
	return c.noteFrom(value), nil
}

// Do sends one request and returns the decoded success body: nil when empty,
// the JSON value with numbers as json.Number, or the raw text when the body
// is not JSON. Any non-2xx status yields an *APIError.
func (c *Client) Do(ctx context.Context, method, path string, body any, opts ...RequestOption) (any, error) {
	target := c.baseURL + path

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &TransportError{Method: method, URL: target, Err: err}
	}
	req.Header.Set("Accept", contentTypeJSON)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	req.Header.Set(requestIDHeader, logging.NewRequestID())
	for _, opt := range opts {
		if opt != nil {
			opt(req)
		}
	}

	log := c.logger.With(
		logging.F("method", method),
		logging.F("url", target),
		logging.F("request_id", req.Header.Get(requestIDHeader)),
	)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("api request failed", logging.Err(err))
		return nil, &TransportError{Method: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	data, readErr := io.ReadAll(resp.Body)
	log.Debug("api request",
		logging.F("status", resp.StatusCode),
		logging.F("duration_ms", time.Since(start).Milliseconds()),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			URL:        target,
			Message:    errorMessage(resp, data, readErr),
		}
		log.Warn("api request failed", logging.F("status", resp.StatusCode), logging.F("error", apiErr.Message))
		return nil, apiErr
	}
	if readErr != nil {
		log.Warn("api response read failed", logging.Err(readErr))
		return nil, &TransportError{Method: method, URL: target, Err: readErr}
	}
	return decodeBody(data), nil
}

func (c *Client) noteFrom(value any) *types.Note {
	note, ok := c.normalizer.NormalizeValue(value)
	if !ok {
		return nil
	}
	return &note
}

func notePath(id types.NoteID) (string, error) {
	if id.IsZero() {
		return "", errors.New("note id is required")
	}
	return "/notes/" + url.PathEscape(id.String()), nil
}

func decodeBody(data []byte) any {
	if len(data) == 0 {
		return nil
	}
	value, err := decodeJSON(data)
	if err != nil {
		return string(data)
	}
	return value
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	return value, nil
}
