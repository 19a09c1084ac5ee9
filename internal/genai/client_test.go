// internal/genai/client_test.go
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"grant-portal/internal/common/config"
	"grant-portal/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	var cfg config.APIsConfig
	cfg.GenAI.BaseURL = server.URL
	cfg.GenAI.APIKey = "test-key"
	cfg.GenAI.Timeout = 2000
	cfg.GenAI.PollInterval = 10

	return NewClient(cfg, logger.NewTestLogger(t))
}

func TestClient_Chat(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "What grants am I eligible for?", req["message"])

		json.NewEncoder(w).Encode(map[string]string{"reply": "It depends on your situation."})
	}))

	reply, err := client.Chat(context.Background(), "What grants am I eligible for?")

	require.NoError(t, err)
	assert.Equal(t, "It depends on your situation.", reply)
}

func TestClient_Chat_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))

	_, err := client.Chat(context.Background(), "hello")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenAIFailed))
	assert.Contains(t, err.Error(), "503")
}

func TestClient_Chat_Timeout(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server detects the client disconnect and
		// cancels the request context once the client times out.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	client.cfg.GenAI.Timeout = 50

	_, err := client.Chat(context.Background(), "hello")

	assert.True(t, errors.Is(err, ErrGenAITimeout))
}

func TestClient_PolishNarrative(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/generate", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, strings.Contains(req["prompt"], "grew revenue 40%"))

		json.NewEncoder(w).Encode(map[string]string{"text": "The business grew revenue by forty percent."})
	}))

	polished, err := client.PolishNarrative(context.Background(), "grew revenue 40%")

	require.NoError(t, err)
	assert.Equal(t, "The business grew revenue by forty percent.", polished)
}

func TestClient_StartVideo_DefaultsAspectRatio(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "16:9", req["aspectRatio"])

		json.NewEncoder(w).Encode(VideoOperation{ID: "op-1"})
	}))

	op, err := client.StartVideo(context.Background(), "a waterfront small business", "4:3")

	require.NoError(t, err)
	assert.Equal(t, "op-1", op.ID)
	assert.False(t, op.Done)
}

func TestClient_GenerateVideo_PollsUntilDone(t *testing.T) {
	var polls int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			json.NewEncoder(w).Encode(VideoOperation{ID: "op-7"})
		case strings.HasSuffix(r.URL.Path, "/op-7"):
			n := atomic.AddInt32(&polls, 1)
			op := VideoOperation{ID: "op-7"}
			if n >= 3 {
				op.Done = true
				op.MediaURI = "https://cdn.example.com/op-7.mp4"
			}
			json.NewEncoder(w).Encode(op)
		default:
			http.NotFound(w, r)
		}
	}))

	uri, err := client.GenerateVideo(context.Background(), "a waterfront small business", "16:9")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/op-7.mp4", uri)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&polls), int32(3))
}

func TestClient_GenerateVideo_OperationError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			json.NewEncoder(w).Encode(VideoOperation{ID: "op-9"})
		default:
			json.NewEncoder(w).Encode(VideoOperation{ID: "op-9", Done: true, Error: "content policy"})
		}
	}))

	_, err := client.GenerateVideo(context.Background(), "prompt", "16:9")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenAIFailed))
	assert.Contains(t, err.Error(), "content policy")
}

func TestClient_GenerateVideo_ContextCancelled(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Operation never completes.
		json.NewEncoder(w).Encode(VideoOperation{ID: fmt.Sprintf("op-%d", time.Now().UnixNano())})
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GenerateVideo(ctx, "prompt", "16:9")

	assert.True(t, errors.Is(err, ErrGenAITimeout))
}
