package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

type SpeechService struct {
	Options []RequestOption
}

func NewSpeechService(opts ...RequestOption) SpeechService {
	return SpeechService{
		Options: opts,
	}
}

type SpeechRequest struct {
	Text  string `json:"text"`
	Agent string `json:"agent,omitempty"`

	Language string  `json:"language,omitempty"`
	Speed    float64 `json:"speed,omitempty"`

	SpeakerWAV string `json:"speaker_wav,omitempty"`

	NetworkQuality string `json:"network_quality,omitempty"`
}

type Speech struct {
	AudioURL string
	Agent    string

	CacheHit bool
	Cost     string

	// Content holds the fetched WAV artifact.
	Content []byte
}

func (r *SpeechService) New(ctx context.Context, input SpeechRequest, opts ...RequestOption) (*Speech, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	data, err := json.Marshal(input)

	if err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/speak", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	var result struct {
		AudioURL string `json:"audio_url"`
		Agent    string `json:"agent"`
		CacheHit bool   `json:"cache_hit"`
		Cost     string `json:"cost"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	content, err := r.fetch(ctx, c, result.AudioURL)

	if err != nil {
		return nil, err
	}

	return &Speech{
		AudioURL: result.AudioURL,
		Agent:    result.Agent,

		CacheHit: result.CacheHit,
		Cost:     result.Cost,

		Content: content,
	}, nil
}

func (r *SpeechService) fetch(ctx context.Context, c *RequestConfig, url string) ([]byte, error) {
	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+url, nil)

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	return io.ReadAll(resp.Body)
}
