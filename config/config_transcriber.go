package config

import (
	"errors"
	"strings"

	"github.com/odia-ai/voicegate/pkg/limiter"
	"github.com/odia-ai/voicegate/pkg/otel"
	"github.com/odia-ai/voicegate/pkg/provider"
	"github.com/odia-ai/voicegate/pkg/provider/openai"
)

func (cfg *Config) registerTranscriber(f *configFile) error {
	if f.Transcriber == nil {
		return nil
	}

	p, err := createTranscriber(*f.Transcriber)

	if err != nil {
		return err
	}

	if limit := createLimiter(f.Transcriber.Limit); limit != nil {
		p = limiter.NewTranscriber(limit, p)
	}

	if otel.EnableTelemetry {
		p = otel.NewTranscriber(f.Transcriber.Type, f.Transcriber.Model, p)
	}

	cfg.Transcriber = p

	return nil
}

func createTranscriber(cfg providerConfig) (provider.Transcriber, error) {
	switch strings.ToLower(cfg.Type) {
	case "openai", "openai-compatible", "whisper":
		return openaiTranscriber(cfg)

	default:
		return nil, errors.New("invalid transcriber type: " + cfg.Type)
	}
}

func openaiTranscriber(cfg providerConfig) (provider.Transcriber, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	return openai.NewTranscriber(cfg.URL, cfg.Model, options...)
}
