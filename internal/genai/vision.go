// internal/genai/vision.go
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// VideoOperation tracks one video generation request against the vision
// model. The operation is started once and polled until a media URI appears.
type VideoOperation struct {
	ID       string `json:"id"`
	Done     bool   `json:"done"`
	MediaURI string `json:"mediaUri,omitempty"`
	Error    string `json:"error,omitempty"`
}

// StartVideo sends the prompt to the vision model and returns the pending
// operation.
func (c *Client) StartVideo(ctx context.Context, prompt, aspectRatio string) (*VideoOperation, error) {
	if aspectRatio != "16:9" && aspectRatio != "9:16" {
		aspectRatio = "16:9"
	}
	body := map[string]interface{}{
		"prompt":      prompt,
		"aspectRatio": aspectRatio,
	}
	var op VideoOperation
	if err := c.post(ctx, "/v1/video/operations", body, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

// PollVideo fetches the current state of an operation.
func (c *Client) PollVideo(ctx context.Context, operationID string) (*VideoOperation, error) {
	timeout := time.Duration(c.cfg.GenAI.Timeout) * time.Millisecond
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.GenAI.BaseURL+"/v1/video/operations/"+operationID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrGenAIFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.GenAI.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return nil, ErrGenAITimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrGenAIFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", ErrGenAIFailed, resp.StatusCode, string(data))
	}

	var op VideoOperation
	if err := json.NewDecoder(resp.Body).Decode(&op); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrGenAIFailed, err)
	}
	return &op, nil
}

// GenerateVideo starts an operation and polls until it completes, the context
// expires, or the model reports an error. Returns the media URI.
func (c *Client) GenerateVideo(ctx context.Context, prompt, aspectRatio string) (string, error) {
	op, err := c.StartVideo(ctx, prompt, aspectRatio)
	if err != nil {
		return "", err
	}

	interval := time.Duration(c.cfg.GenAI.PollInterval) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if op.Done {
			if op.Error != "" {
				return "", fmt.Errorf("%w: %s", ErrGenAIFailed, op.Error)
			}
			return op.MediaURI, nil
		}

		select {
		case <-ctx.Done():
			return "", ErrGenAITimeout
		case <-ticker.C:
		}

		op, err = c.PollVideo(ctx, op.ID)
		if err != nil {
			return "", err
		}
	}
}
