package mrpsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// do performs a request against the API, JSON-encoding body when non-nil and
// attaching the bearer token when non-empty. Non-2xx responses decode into
// *APIError.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// decodeError turns a non-2xx response into an *APIError, synthesizing one
// when the body is not the standard envelope.
func decodeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return fmt.Errorf("read error response: %w", err)
	}

	var apiErr APIError
	if err := json.Unmarshal(raw, &apiErr); err != nil || apiErr.Code == "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       ErrorCodeServerError,
			Message:    fmt.Sprintf("unexpected response: %s", resp.Status),
		}
	}
	apiErr.StatusCode = resp.StatusCode
	return &apiErr
}
