package config

import (
	"errors"
	"strings"

	"github.com/odia-ai/voicegate/pkg/limiter"
	"github.com/odia-ai/voicegate/pkg/otel"
	"github.com/odia-ai/voicegate/pkg/provider"
	"github.com/odia-ai/voicegate/pkg/provider/anthropic"
	"github.com/odia-ai/voicegate/pkg/provider/openai"
)

func (cfg *Config) registerCompleter(f *configFile) error {
	if f.Completer == nil {
		return nil
	}

	p, err := createCompleter(*f.Completer)

	if err != nil {
		return err
	}

	if limit := createLimiter(f.Completer.Limit); limit != nil {
		p = limiter.NewCompleter(limit, p)
	}

	if otel.EnableTelemetry {
		p = otel.NewCompleter(f.Completer.Type, f.Completer.Model, p)
	}

	cfg.Completer = p

	return nil
}

func createCompleter(cfg providerConfig) (provider.Completer, error) {
	switch strings.ToLower(cfg.Type) {
	case "anthropic":
		return anthropicCompleter(cfg)

	case "openai", "openai-compatible":
		return openaiCompleter(cfg)

	default:
		return nil, errors.New("invalid completer type: " + cfg.Type)
	}
}

func anthropicCompleter(cfg providerConfig) (provider.Completer, error) {
	var options []anthropic.Option

	if cfg.Token != "" {
		options = append(options, anthropic.WithToken(cfg.Token))
	}

	return anthropic.NewCompleter(cfg.URL, cfg.Model, options...)
}

func openaiCompleter(cfg providerConfig) (provider.Completer, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	return openai.NewCompleter(cfg.URL, cfg.Model, options...)
}
