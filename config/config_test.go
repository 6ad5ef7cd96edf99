package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/odia-ai/voicegate/config"
	"github.com/odia-ai/voicegate/pkg/agent"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestParse(t *testing.T) {
	t.Setenv("TTS_URL", "http://localhost:5002")

	dir := t.TempDir()

	path := writeConfig(t, `
address: :9090

synthesizer:
  type: coqui
  url: ${TTS_URL}
  model: xtts_v2

agents:
  lexi:
    reference: lexi_studio.wav
    fallbacks:
      - keyword: discount
        reply: We offer discounts for annual plans.

voice:
  store: `+dir+`
  workers: 3
  timeout: 90s
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Address)
	require.NotNil(t, cfg.Synthesizer)
	require.NotNil(t, cfg.Gateway)
	require.NotNil(t, cfg.Orchestrator)
	require.Nil(t, cfg.Completer)

	p, err := cfg.Agents.Persona(agent.Lexi)
	require.NoError(t, err)
	require.Equal(t, "lexi_studio.wav", p.Reference)
	require.Equal(t, "We offer discounts for annual plans.", p.Fallback("any discount available?"))
}

func TestParseKeepsFallbackOrder(t *testing.T) {
	content := `
synthesizer:
  type: coqui
  url: http://localhost:5002

agents:
  lexi:
    fallbacks:
      - keyword: refund policy
        reply: Refunds are processed within 5 business days.
      - keyword: policy
        reply: Our policies are listed on the website.
`

	// both keywords match the input; the more specific one is listed first
	// and must win on every parse
	for i := 0; i < 20; i++ {
		cfg, err := config.Parse(writeConfig(t, content))
		require.NoError(t, err)

		p, err := cfg.Agents.Persona(agent.Lexi)
		require.NoError(t, err)

		reply := p.Fallback("what is your refund policy?")
		require.Equal(t, "Refunds are processed within 5 business days.", reply)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, `
synthesizer:
  type: coqui
  url: http://localhost:5002
  voices: [a, b]
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}

func TestParseRequiresSynthesizer(t *testing.T) {
	path := writeConfig(t, `
address: :8080
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}

func TestParseRejectsUnknownAgent(t *testing.T) {
	path := writeConfig(t, `
synthesizer:
  type: coqui
  url: http://localhost:5002

agents:
  santa:
    reference: santa.wav
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}
