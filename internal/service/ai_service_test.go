package service

import (
	"eduflow_backend/internal/config"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAITestServer(t *testing.T, handler http.HandlerFunc) *AIService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAIService(config.AIConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	})
}

func TestChat(t *testing.T) {
	ai := newAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello there"}}]}`))
	})

	answer, err := ai.Chat("hi", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "hello there", answer)
}

func TestChat_InBandError(t *testing.T) {
	ai := newAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":{"message":"model overloaded"}}`))
	})

	_, err := ai.Chat("hi", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestChat_HTTPError(t *testing.T) {
	ai := newAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	})

	_, err := ai.Chat("hi", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
