// pkg/applyflow/submitter.go
package applyflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"grant-portal/internal/models"
)

// Submitter delivers a finished draft to the portal. A transport error (err
// != nil) means the server was never reached; an explicit rejection comes
// back as a response with Success=false and the HTTP status.
type Submitter interface {
	Submit(ctx context.Context, req models.SubmissionRequest) (*models.SubmissionResponse, int, error)
}

// HTTPSubmitter posts the draft as JSON to the portal's submission endpoint.
// No client-side timeout is set; callers bound the request via ctx.
type HTTPSubmitter struct {
	baseURL string
	client  *http.Client
}

func NewHTTPSubmitter(baseURL string) *HTTPSubmitter {
	return &HTTPSubmitter{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, req models.SubmissionRequest) (*models.SubmissionResponse, int, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, 0, fmt.Errorf("encoding submission: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/submit", bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("building submission request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("posting submission: %w", err)
	}
	defer resp.Body.Close()

	var envelope models.SubmissionResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decoding submission response: %w", err)
	}
	return &envelope, resp.StatusCode, nil
}
