// Package client is a Go client for the featured-content API.
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
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vyrodovalexey/featured-content/internal/model"
	"github.com/vyrodovalexey/featured-content/internal/retry"
)

const (
	contentPath    = "/api/featured-content"
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 1 << 16
)

// ErrInvalidBaseURL is returned by New for unusable base URLs.
var ErrInvalidBaseURL = errors.New("base URL must be an absolute http(s) URL")

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (status %d): %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to a featured-content server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retry      retry.Config
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRetry sets the retry policy for transport errors and 5xx answers.
// It applies to idempotent requests only; Create is always sent once.
func WithRetry(cfg retry.Config) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithLogger sets the logger used to report retried attempts.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		retry:      retry.DefaultConfig(),
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.retry.IsRetryable = isRetryable

	return c, nil
}

// List returns the first limit items, or all items when limit is not positive.
func (c *Client) List(ctx context.Context, limit int) ([]model.ContentItem, error) {
	path := contentPath
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	items := []model.ContentItem{}
	if _, err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}

	return items, nil
}

// Get returns the item with id.
func (c *Client) Get(ctx context.Context, id int) (*model.ContentItem, error) {
	var item model.ContentItem
	if _, err := c.do(ctx, http.MethodGet, itemPath(id), nil, &item); err != nil {
		return nil, fmt.Errorf("get content %d: %w", id, err)
	}

	return &item, nil
}

// Create stores a new item and returns it with its assigned id.
func (c *Client) Create(ctx context.Context, input model.NewContentItem) (*model.ContentItem, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode content: %w", err)
	}

	var item model.ContentItem
	if _, err := c.do(ctx, http.MethodPost, contentPath, body, &item); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	return &item, nil
}

// Delete removes the item with id and returns the server's confirmation message.
func (c *Client) Delete(ctx context.Context, id int) (string, error) {
	message, err := c.do(ctx, http.MethodDelete, itemPath(id), nil, nil)
	if err != nil {
		return "", fmt.Errorf("delete content %d: %w", id, err)
	}

	return message, nil
}

func itemPath(id int) string {
	return contentPath + "/" + strconv.Itoa(id)
}

// do sends the request under the retry policy, decodes the envelope data
// into out when out is non-nil and returns the envelope message.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) (string, error) {
	var message string
	attempt := 0

	policy := c.retry
	if !idempotent(method) {
		// The server assigns a new id per POST; a resend after a lost
		// response would store the item twice.
		policy.MaxAttempts = 1
	}

	err := retry.Do(ctx, policy, func(ctx context.Context) error {
		attempt++

		msg, err := c.send(ctx, method, path, body, out)
		if err != nil {
			if isRetryable(err) {
				c.logger.Debug("request attempt failed",
					zap.String("method", method),
					zap.String("path", path),
					zap.Int("attempt", attempt),
					zap.Error(err),
				)
			}
			return err
		}

		message = msg
		return nil
	})

	return message, err
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// send performs one request.
func (c *Client) send(ctx context.Context, method, path string, body []byte, out any) (string, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	var envelope model.APIResponse[json.RawMessage]

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&envelope); err == nil {
			if envelope.Message != "" {
				apiErr.Message = envelope.Message
			}
			apiErr.Detail = envelope.Error
		}
		return "", apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return "", fmt.Errorf("decode response data: %w", err)
		}
	}

	return envelope.Message, nil
}

// isRetryable retries transport failures and 5xx answers, never 4xx or
// a cancelled context.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}

	return true
}
