package openai

import (
	"bytes"
	"context"

	"github.com/odia-ai/voicegate/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
)

var _ provider.Transcriber = (*Transcriber)(nil)

type Transcriber struct {
	*Config
	transcriptions openai.AudioTranscriptionService
}

func NewTranscriber(url, model string, options ...Option) (*Transcriber, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Transcriber{
		Config:         cfg,
		transcriptions: openai.NewAudioTranscriptionService(cfg.Options()...),
	}, nil
}

func (t *Transcriber) Transcribe(ctx context.Context, input provider.File, options *provider.TranscribeOptions) (*provider.Transcription, error) {
	if options == nil {
		options = new(provider.TranscribeOptions)
	}

	transcription, err := t.transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		Model: openai.AudioModel(t.model),

		File: openai.File(bytes.NewReader(input.Content), input.Name, input.ContentType),

		ResponseFormat: openai.AudioResponseFormatJSON,
	})

	if err != nil {
		return nil, convertError(err)
	}

	return &provider.Transcription{
		ID:    uuid.NewString(),
		Model: t.model,

		Text: transcription.Text,
	}, nil
}
