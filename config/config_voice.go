package config

import (
	"log/slog"
	"time"

	"github.com/odia-ai/voicegate/pkg/chat"
	"github.com/odia-ai/voicegate/pkg/store"
	"github.com/odia-ai/voicegate/pkg/voice"
)

type voiceConfig struct {
	Store      string `yaml:"store"`
	References string `yaml:"references"`

	Workers int `yaml:"workers"`

	Timeout           string `yaml:"timeout"`
	CompleteTimeout   string `yaml:"complete_timeout"`
	TranscribeTimeout string `yaml:"transcribe_timeout"`
}

func (cfg *Config) registerVoice(f *configFile) error {
	dir := f.Voice.Store

	if dir == "" {
		dir = "data/audio"
	}

	references := f.Voice.References

	if references == "" {
		references = "references"
	}

	artifacts, err := store.New(dir)

	if err != nil {
		return err
	}

	timeout, err := parseDuration(f.Voice.Timeout)

	if err != nil {
		return err
	}

	completeTimeout, err := parseDuration(f.Voice.CompleteTimeout)

	if err != nil {
		return err
	}

	transcribeTimeout, err := parseDuration(f.Voice.TranscribeTimeout)

	if err != nil {
		return err
	}

	resolver := voice.NewResolver(references, cfg.Agents)

	gateway := voice.NewGateway(cfg.Synthesizer, resolver, artifacts, &voice.GatewayOptions{
		Timeout: timeout,
		Workers: f.Voice.Workers,

		Logger: slog.Default(),
	})

	log := chat.NewLog()

	orchestrator := chat.NewOrchestrator(gateway, cfg.Agents, log, &chat.OrchestratorOptions{
		Completer:   cfg.Completer,
		Transcriber: cfg.Transcriber,

		CompleteTimeout:   completeTimeout,
		TranscribeTimeout: transcribeTimeout,

		Logger: slog.Default(),
	})

	cfg.Store = artifacts
	cfg.Gateway = gateway

	cfg.Orchestrator = orchestrator
	cfg.Log = log

	return nil
}

func parseDuration(val string) (time.Duration, error) {
	if val == "" {
		return 0, nil
	}

	return time.ParseDuration(val)
}
