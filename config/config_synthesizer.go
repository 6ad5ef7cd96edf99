package config

import (
	"errors"
	"strings"

	"github.com/odia-ai/voicegate/pkg/limiter"
	"github.com/odia-ai/voicegate/pkg/otel"
	"github.com/odia-ai/voicegate/pkg/provider"
	"github.com/odia-ai/voicegate/pkg/provider/coqui"
)

func (cfg *Config) registerSynthesizer(f *configFile) error {
	if f.Synthesizer == nil {
		return errors.New("synthesizer not configured")
	}

	p, err := createSynthesizer(*f.Synthesizer)

	if err != nil {
		return err
	}

	if limit := createLimiter(f.Synthesizer.Limit); limit != nil {
		p = limiter.NewSynthesizer(limit, p)
	}

	if otel.EnableTelemetry {
		p = otel.NewSynthesizer(f.Synthesizer.Type, f.Synthesizer.Model, p)
	}

	cfg.Synthesizer = p

	return nil
}

func createSynthesizer(cfg providerConfig) (provider.Synthesizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "coqui", "xtts":
		return coquiSynthesizer(cfg)

	default:
		return nil, errors.New("invalid synthesizer type: " + cfg.Type)
	}
}

func coquiSynthesizer(cfg providerConfig) (provider.Synthesizer, error) {
	var options []coqui.Option

	if cfg.Model != "" {
		options = append(options, coqui.WithModel(cfg.Model))
	}

	return coqui.NewSynthesizer(cfg.URL, options...)
}
