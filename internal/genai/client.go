// internal/genai/client.go
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"grant-portal/internal/common/config"
	"grant-portal/internal/common/logger"
)

var (
	ErrGenAITimeout = errors.New("GENAI_TIMEOUT")
	ErrGenAIFailed  = errors.New("GENAI_REQUEST_FAILED")
)

// Client is the narrow adapter over the third-party generative API: send text,
// receive text. Nothing model-specific lives in this repo.
type Client struct {
	cfg        config.APIsConfig
	httpClient *http.Client
	logger     logger.Logger
}

func NewClient(cfg config.APIsConfig, log logger.Logger) *Client {
	return &Client{
		cfg: cfg,
		// No client-level timeout; per-call contexts bound each request.
		httpClient: &http.Client{},
		logger:     log.WithFields(map[string]interface{}{"component": "genai-client"}),
	}
}

// Chat sends one user message and returns the model's text reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	body := map[string]interface{}{
		"message": message,
	}
	var out struct {
		Reply string `json:"reply"`
	}
	if err := c.post(ctx, "/v1/chat", body, &out); err != nil {
		return "", err
	}
	return out.Reply, nil
}

// PolishNarrative rewrites the applicant's raw bullet points into the
// professional summary stored on the vProfile.
func (c *Client) PolishNarrative(ctx context.Context, raw string) (string, error) {
	body := map[string]interface{}{
		"prompt": "Rewrite the following notes as a concise, professional grant narrative:\n" + raw,
	}
	var out struct {
		Text string `json:"text"`
	}
	if err := c.post(ctx, "/v1/generate", body, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	timeout := time.Duration(c.cfg.GenAI.Timeout) * time.Millisecond
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: marshal request: %v", ErrGenAIFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GenAI.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrGenAIFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.GenAI.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return ErrGenAITimeout
		}
		return fmt.Errorf("%w: %v", ErrGenAIFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %d: %s", ErrGenAIFailed, resp.StatusCode, string(data))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrGenAIFailed, err)
	}
	return nil
}
