package rostercheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// HTTPClient wraps http.Client with the service base URL.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Activities fetches the full registry.
func (c *HTTPClient) Activities(ctx context.Context) (map[string]Activity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET /activities: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	var activities map[string]Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}

// Signup posts a signup and returns the status code and response detail or message.
func (c *HTTPClient) Signup(ctx context.Context, activity, email string) (int, string, error) {
	return c.post(ctx, activity, "signup", email)
}

// Unregister posts an unregister and returns the status code and response detail or message.
func (c *HTTPClient) Unregister(ctx context.Context, activity, email string) (int, string, error) {
	return c.post(ctx, activity, "unregister", email)
}

func (c *HTTPClient) post(ctx context.Context, activity, action, email string) (int, string, error) {
	target := fmt.Sprintf("%s/activities/%s/%s?email=%s",
		c.baseURL, url.PathEscape(activity), action, url.QueryEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, nil)
	if err != nil {
		return 0, "", fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("%s %q: %w", action, activity, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("failed to read response body: %w", err)
	}
	// Errors carry "detail", successes carry "message".
	if !gjson.ValidBytes(body) {
		return resp.StatusCode, string(body), nil
	}
	if detail := gjson.GetBytes(body, "detail"); detail.Exists() {
		return resp.StatusCode, detail.String(), nil
	}
	return resp.StatusCode, gjson.GetBytes(body, "message").String(), nil
}

// Healthy reports whether GET /healthz answers 200.
func (c *HTTPClient) Healthy(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET /healthz: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}
