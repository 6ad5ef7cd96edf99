package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/odia-ai/voicegate/config"
	"github.com/odia-ai/voicegate/pkg/agent"
	"github.com/odia-ai/voicegate/pkg/chat"
	"github.com/odia-ai/voicegate/pkg/provider"
	"github.com/odia-ai/voicegate/pkg/store"
	"github.com/odia-ai/voicegate/pkg/voice"
	"github.com/odia-ai/voicegate/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type stubSynthesizer struct {
	calls atomic.Int64
}

func (s *stubSynthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	s.calls.Add(1)

	return &provider.Synthesis{
		ID:    "stub",
		Model: "xtts_v2",

		Samples:    []float32{0.1, -0.2, 0.3, -0.4},
		SampleRate: 22050,
	}, nil
}

func (s *stubSynthesizer) Model() string {
	return "xtts_v2"
}

type failingCompleter struct{}

func (failingCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	return nil, context.DeadlineExceeded
}

func newTestHandler(t *testing.T) (http.Handler, *stubSynthesizer) {
	t.Helper()

	refDir := t.TempDir()
	registry := agent.NewRegistry(agent.Defaults()...)

	for _, id := range agent.All() {
		path := filepath.Join(refDir, string(id)+"_ref.wav")
		require.NoError(t, os.WriteFile(path, []byte("ref"), 0o644))
	}

	artifacts, err := store.New(t.TempDir())
	require.NoError(t, err)

	synth := &stubSynthesizer{}

	gateway := voice.NewGateway(synth, voice.NewResolver(refDir, registry), artifacts, nil)

	log := chat.NewLog()

	orchestrator := chat.NewOrchestrator(gateway, registry, log, &chat.OrchestratorOptions{
		Completer: failingCompleter{},
	})

	cfg := &config.Config{
		Address: ":0",

		Synthesizer: synth,
		Completer:   failingCompleter{},

		Agents: registry,

		Store:   artifacts,
		Gateway: gateway,

		Orchestrator: orchestrator,
		Log:          log,
	}

	h, err := api.New(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	h.Attach(r)

	return r, synth
}

func postJson(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func TestSpeakMissThenHit(t *testing.T) {
	h, synth := newTestHandler(t)

	body := map[string]any{"text": "Hello Lagos", "agent": "lexi"}

	w := postJson(t, h, "/speak", body)
	require.Equal(t, http.StatusOK, w.Code)

	var first struct {
		Status   string `json:"status"`
		AudioURL string `json:"audio_url"`
		Agent    string `json:"agent"`
		CacheHit bool   `json:"cache_hit"`
		Cost     string `json:"cost"`
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	require.Equal(t, "SUCCESS", first.Status)
	require.Equal(t, "lexi", first.Agent)
	require.False(t, first.CacheHit)
	require.Equal(t, "₦0.10", first.Cost)

	w = postJson(t, h, "/speak", body)
	require.Equal(t, http.StatusOK, w.Code)

	var second struct {
		AudioURL string `json:"audio_url"`
		CacheHit bool   `json:"cache_hit"`
		Cost     string `json:"cost"`
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	require.True(t, second.CacheHit)
	require.Equal(t, "₦0.00", second.Cost)
	require.Equal(t, first.AudioURL, second.AudioURL)

	require.EqualValues(t, 1, synth.calls.Load())

	req := httptest.NewRequest(http.MethodGet, first.AudioURL, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "audio/wav", rec.Header().Get("Content-Type"))
	require.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	require.NotEmpty(t, rec.Body.Bytes())
}

func TestSpeakRejectsBadInput(t *testing.T) {
	h, _ := newTestHandler(t)

	w := postJson(t, h, "/speak", map[string]any{"text": "   "})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postJson(t, h, "/speak", map[string]any{"text": "hi", "agent": "nobody"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postJson(t, h, "/speak", map[string]any{"text": "hi", "speed": -1.0})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAudioUnknownKey(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/audio/deadbeef", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatFallsBackWhenCompleterFails(t *testing.T) {
	h, _ := newTestHandler(t)

	w := postJson(t, h, "/chat/lexi", map[string]any{"text": "what is your pricing?"})
	require.Equal(t, http.StatusOK, w.Code)

	var reply struct {
		ReplyText string `json:"reply_text"`
		AudioURL  string `json:"audio_url"`
		Agent     string `json:"agent"`
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	require.Equal(t, "lexi", reply.Agent)
	require.Contains(t, reply.ReplyText, "₦15,000")
	require.NotEmpty(t, reply.AudioURL)
}

func TestChatUnknownAgent(t *testing.T) {
	h, _ := newTestHandler(t)

	w := postJson(t, h, "/chat/nobody", map[string]any{"text": "hello"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var health struct {
		Status       string `json:"status"`
		Ready        bool   `json:"ready"`
		Model        string `json:"model"`
		CacheEntries int    `json:"cache_entries"`
		ChatReady    bool   `json:"chat_ready"`
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	require.Equal(t, "healthy", health.Status)
	require.True(t, health.Ready)
	require.Equal(t, "xtts_v2", health.Model)
	require.True(t, health.ChatReady)
}

func TestAnalytics(t *testing.T) {
	h, _ := newTestHandler(t)

	w := postJson(t, h, "/chat/lexi", map[string]any{"text": "hello there"})
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var analytics struct {
		TotalGenerations   int      `json:"total_generations"`
		TotalConversations int      `json:"total_conversations"`
		AgentsActive       []string `json:"agents_active"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analytics))
	require.Equal(t, 1, analytics.TotalGenerations)
	require.Equal(t, 1, analytics.TotalConversations)
	require.Contains(t, analytics.AgentsActive, "lexi")
}
