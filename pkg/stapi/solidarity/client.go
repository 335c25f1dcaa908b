// Package solidarity provides a stapi.Client implementation backed by the
// solidarity.tech v1 REST API.
package solidarity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sttools/pkg/logger"
	"sttools/pkg/serrors"
	"sttools/pkg/stapi"

	"go.uber.org/zap"
)

// DefaultBaseURL is the root of the public ST v1 REST API.
const DefaultBaseURL = "https://api.solidarity.tech/v1/"

// Options configure retry behavior for requests against the API.
type Options struct {
	// RetryAttempts is how many times a rate-limited, server-failed or
	// network-failed request is retried after the initial attempt.
	RetryAttempts int
	// RetryBackoff is the fixed delay between attempts.
	RetryBackoff time.Duration
}

// Client talks to the ST REST API and fulfills the stapi.Client interface.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the API
	baseURL    string       // baseURL is the API root, always ending in a slash
	apiKey     string       // apiKey is the bearer token for the API
	options    Options
}

// New constructs a Client that uses the provided http.Client and API key to
// interact with the ST API rooted at baseURL (DefaultBaseURL when empty).
func New(httpClient *http.Client, baseURL, apiKey string, options Options) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		options:    options,
	}
}

// pageValues encodes the standard ST pagination parameters.
func pageValues(p stapi.PageParams) url.Values {
	q := url.Values{}
	q.Set("_limit", fmt.Sprintf("%d", p.Limit))
	q.Set("_offset", fmt.Sprintf("%d", p.Offset))
	q.Set("_since", fmt.Sprintf("%d", p.Since))

	return q
}

// do performs one API call with bounded retries. Rate-limited responses,
// server errors and transport failures are retried up to RetryAttempts times
// with a fixed backoff; everything else fails immediately. The successful
// response body is returned raw for the caller to decode.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request: %w", err)
		}
		payload = b
	}

	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	for attempt := 0; ; attempt++ {
		respBody, retryable, err := c.once(ctx, method, u, payload)
		if err == nil {
			return respBody, nil
		}
		if !retryable || attempt >= c.options.RetryAttempts {
			return nil, err
		}

		logger.Warn(ctx, "retrying API request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("attempt", attempt+1),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.options.RetryBackoff):
		}
	}
}

// once performs a single HTTP round trip and maps the response status onto
// semantic error kinds. The second return value reports whether the failure
// is worth retrying.
func (c *Client) once(ctx context.Context, method, u string, payload []byte) ([]byte, bool, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, false, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return b, false, nil
	}

	msg := strings.TrimSpace(string(b))
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, false, serrors.With(serrors.ErrUnauthorized, "unauthorized: %s", msg)
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, serrors.With(serrors.ErrNotFound, "not found: %s", msg)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, serrors.With(serrors.ErrRateLimited, "rate limited: %s", msg)
	case resp.StatusCode >= 500:
		return nil, true, serrors.With(serrors.ErrUnavailable, "server error %d: %s", resp.StatusCode, msg)
	default:
		return nil, false, serrors.With(serrors.ErrBadRequest, "request failed with status %d: %s", resp.StatusCode, msg)
	}
}

// getList fetches a list endpoint and decodes the standard {data, meta}
// pagination envelope.
func getList[T any](ctx context.Context, c *Client, path string, q url.Values) ([]T, *stapi.ListMeta, error) {
	b, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, nil, err
	}

	var envelope struct {
		Data []T             `json:"data"`
		Meta *stapi.ListMeta `json:"meta"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		return nil, nil, fmt.Errorf("could not decode response: %w", err)
	}

	return envelope.Data, envelope.Meta, nil
}

// getOne fetches a single-entity endpoint.
func getOne[T any](ctx context.Context, c *Client, path string) (*T, error) {
	b, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeOne[T](b)
}

// postOne sends a create request and decodes the created entity.
func postOne[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	b, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}

	return decodeOne[T](b)
}

// putOne sends an update request and decodes the updated entity.
func putOne[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	b, err := c.do(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return nil, err
	}

	return decodeOne[T](b)
}

func decodeOne[T any](b []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return &out, nil
}

// Ensure Client conforms to the stapi.Client interface at compile time.
var _ stapi.Client = (*Client)(nil)
