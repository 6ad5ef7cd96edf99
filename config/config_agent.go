package config

import (
	"github.com/odia-ai/voicegate/pkg/agent"
)

type agentConfig struct {
	Prompt    string `yaml:"prompt"`
	Reference string `yaml:"reference"`

	// Fallbacks is a sequence, not a map: the table is matched first to last,
	// so override order must survive parsing.
	Fallbacks []fallbackConfig `yaml:"fallbacks"`

	DefaultReply string `yaml:"default_reply"`
}

type fallbackConfig struct {
	Keyword string `yaml:"keyword"`
	Reply   string `yaml:"reply"`
}

// registerAgents starts from the built-in personas and applies overrides, so
// a config file only has to mention what it changes.
func (cfg *Config) registerAgents(f *configFile) error {
	personas := agent.Defaults()

	for id, override := range f.Agents {
		parsed, err := agent.Parse(id)

		if err != nil {
			return err
		}

		for _, p := range personas {
			if p.ID != parsed {
				continue
			}

			if override.Prompt != "" {
				p.Prompt = override.Prompt
			}

			if override.Reference != "" {
				p.Reference = override.Reference
			}

			if override.DefaultReply != "" {
				p.DefaultReply = override.DefaultReply
			}

			for _, fb := range override.Fallbacks {
				p.Fallbacks = append(p.Fallbacks, agent.Fallback{
					Keyword: fb.Keyword,
					Reply:   fb.Reply,
				})
			}
		}
	}

	cfg.Agents = agent.NewRegistry(personas...)

	return nil
}
