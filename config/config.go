package config

import (
	"bytes"
	"os"

	"github.com/odia-ai/voicegate/pkg/agent"
	"github.com/odia-ai/voicegate/pkg/chat"
	"github.com/odia-ai/voicegate/pkg/provider"
	"github.com/odia-ai/voicegate/pkg/store"
	"github.com/odia-ai/voicegate/pkg/voice"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Completer   provider.Completer
	Synthesizer provider.Synthesizer
	Transcriber provider.Transcriber

	Agents *agent.Registry

	Store   *store.Store
	Gateway *voice.Gateway

	Orchestrator *chat.Orchestrator
	Log          *chat.Log
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerAgents(file); err != nil {
		return nil, err
	}

	if err := c.registerSynthesizer(file); err != nil {
		return nil, err
	}

	if err := c.registerCompleter(file); err != nil {
		return nil, err
	}

	if err := c.registerTranscriber(file); err != nil {
		return nil, err
	}

	if err := c.registerVoice(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Synthesizer *providerConfig `yaml:"synthesizer"`
	Completer   *providerConfig `yaml:"completer"`
	Transcriber *providerConfig `yaml:"transcriber"`

	Agents map[string]agentConfig `yaml:"agents"`

	Voice voiceConfig `yaml:"voice"`
}

type providerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	Model string `yaml:"model"`

	Limit *int `yaml:"limit"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
