package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/maheshrc27/postflow-tools/internal/models"
	"github.com/maheshrc27/postflow-tools/internal/transfer"
)

// APIError is a non-2xx answer from a platform API.
type APIError struct {
	Platform   models.Platform
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s api error (status %d): %s", e.Platform, e.StatusCode, e.Message)
}

type apiClient struct {
	platform models.Platform
	http     *http.Client
	baseURL  string
}

// do sends body as JSON when non-nil and decodes the response into out when
// non-nil. It returns the response headers.
func (c *apiClient) do(ctx context.Context, method, path string, body, out any, headers map[string]string) (http.Header, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error marshalling payload: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("HTTP request error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Platform: c.platform, StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
		slog.Info(apiErr.Error())
		return resp.Header, apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.Header, fmt.Errorf("error parsing response: %w", err)
		}
	}

	return resp.Header, nil
}

// errorMessage pulls a readable message out of Graph, Twitter or LinkedIn
// error bodies, falling back to the raw body.
func errorMessage(body []byte) string {
	var graph transfer.GraphErrorResponse
	if err := json.Unmarshal(body, &graph); err == nil && graph.Error.Message != "" {
		return graph.Error.Message
	}

	var generic struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal(body, &generic); err == nil {
		switch {
		case generic.Detail != "":
			return generic.Detail
		case generic.Message != "":
			return generic.Message
		case generic.Title != "":
			return generic.Title
		}
	}

	msg := string(body)
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

func scheduleAck(platform models.Platform, at time.Time) *models.PostResult {
	t := at.UTC()
	return &models.PostResult{
		Success:       true,
		Platform:      platform,
		Scheduled:     true,
		ScheduledTime: &t,
		Timestamp:     time.Now().UTC(),
	}
}

func withTimeout(client *http.Client, timeout time.Duration) *http.Client {
	if timeout > 0 {
		client.Timeout = timeout
	}
	return client
}
