package coqui_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/odia-ai/voicegate/pkg/provider"
	"github.com/odia-ai/voicegate/pkg/provider/coqui"
	"github.com/odia-ai/voicegate/pkg/wav"

	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	var got map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/tts", r.URL.Path)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		data, err := wav.Encode([]float32{0.1, 0.2, -0.3}, 22050)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "audio/wav")
		w.Write(data)
	}))
	defer server.Close()

	s, err := coqui.NewSynthesizer(server.URL)
	require.NoError(t, err)

	synthesis, err := s.Synthesize(context.Background(), "Hello Lagos", &provider.SynthesizeOptions{
		Language:  "en",
		Speed:     1.25,
		Reference: "/ref/lexi_ref.wav",
	})
	require.NoError(t, err)

	require.Equal(t, "Hello Lagos", got["text"])
	require.Equal(t, "en", got["language"])
	require.Equal(t, "/ref/lexi_ref.wav", got["speaker_wav"])
	require.EqualValues(t, 1.25, got["speed"])

	require.Equal(t, "xtts_v2", synthesis.Model)
	require.Equal(t, 22050, synthesis.SampleRate)
	require.Len(t, synthesis.Samples, 3)
}

func TestSynthesizeEngineRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "text too long", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	s, err := coqui.NewSynthesizer(server.URL)
	require.NoError(t, err)

	_, err = s.Synthesize(context.Background(), "hi", nil)

	var statusErr *coqui.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.True(t, statusErr.Permanent())
	require.Contains(t, statusErr.Error(), "text too long")
}

func TestSynthesizeEngineOverload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s, err := coqui.NewSynthesizer(server.URL)
	require.NoError(t, err)

	_, err = s.Synthesize(context.Background(), "hi", nil)

	var statusErr *coqui.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.False(t, statusErr.Permanent())
}

func TestNewSynthesizerRequiresURL(t *testing.T) {
	_, err := coqui.NewSynthesizer("")
	require.Error(t, err)
}
