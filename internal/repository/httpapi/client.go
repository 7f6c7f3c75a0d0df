package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/rs/zerolog"
)

// maxBodySize caps how much of a response body is read
const maxBodySize = 4 * 1024 * 1024

// mutationResult is the envelope every finance API mutation answers with
type mutationResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Client performs JSON requests against the finance API.
// It never retries and sets no timeout of its own; cancellation follows ctx.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Client. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "finance_api").Logger(),
	}
}

// getJSON issues a GET and decodes a 2xx body into out.
// Non-2xx answers wrap domain.ErrNotOK; network failures wrap domain.ErrTransport.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("Finance API unreachable")
		return fmt.Errorf("%w: GET %s: %v", domain.ErrTransport, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("Finance API read not ok")
		return fmt.Errorf("%w: GET %s: status %d", domain.ErrNotOK, path, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: invalid JSON: %v", domain.ErrTransport, path, err)
	}
	return nil
}

// mutate issues a mutation and checks the success envelope. When out is
// non-nil the same body is also decoded into it. A success=false body or an
// undecodable non-2xx answer becomes a *domain.APIError.
func (c *Client) mutate(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("Finance API unreachable")
		return fmt.Errorf("%w: %s %s: %v", domain.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrTransport, method, path, err)
	}

	var result mutationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		c.logger.Warn().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("Finance API mutation returned non-JSON body")
		return &domain.APIError{Status: resp.StatusCode}
	}

	if !result.Success {
		c.logger.Info().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("error", result.Error).
			Msg("Finance API rejected mutation")
		return &domain.APIError{Status: resp.StatusCode, Message: result.Error}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: %s %s: invalid JSON: %v", domain.ErrTransport, method, path, err)
		}
	}
	return nil
}
