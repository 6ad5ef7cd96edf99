// Package coqui talks to an XTTS-style synthesis server: JSON request in,
// WAV audio out. The engine is a black box; reference audio conditions the
// voice when provided, otherwise the engine's built-in speaker is used.
package coqui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/odia-ai/voicegate/pkg/provider"
	"github.com/odia-ai/voicegate/pkg/wav"

	"github.com/google/uuid"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

const defaultModel = "xtts_v2"

type Synthesizer struct {
	*Config
}

func NewSynthesizer(url string, options ...Option) (*Synthesizer, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	cfg := &Config{
		url: strings.TrimRight(url, "/"),

		model: defaultModel,
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.client == nil {
		cfg.client = http.DefaultClient
	}

	return &Synthesizer{
		Config: cfg,
	}, nil
}

// Model reports the engine model identifier.
func (s *Synthesizer) Model() string {
	return s.model
}

type speechRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`

	SpeakerWav string  `json:"speaker_wav,omitempty"`
	Speed      float64 `json:"speed,omitempty"`
}

func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	body, err := json.Marshal(speechRequest{
		Text:     content,
		Language: options.Language,

		SpeakerWav: options.Reference,
		Speed:      options.Speed,
	})

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url+"/api/tts", bytes.NewReader(body))

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/wav")

	resp, err := s.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return nil, &StatusError{
			Code:   resp.StatusCode,
			Detail: strings.TrimSpace(string(detail)),
		}
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	samples, rate, err := wav.Decode(data)

	if err != nil {
		return nil, fmt.Errorf("decode engine audio: %w", err)
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Samples:    samples,
		SampleRate: rate,
	}, nil
}

// StatusError is a non-2xx engine response. 4xx means the engine rejected
// the request; retrying will not help.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("engine returned status %d", e.Code)
	}

	return fmt.Sprintf("engine returned status %d: %s", e.Code, e.Detail)
}

func (e *StatusError) Permanent() bool {
	return e.Code >= 400 && e.Code < 500
}
