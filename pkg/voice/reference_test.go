package voice_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/odia-ai/voicegate/pkg/agent"
	"github.com/odia-ai/voicegate/pkg/voice"

	"github.com/stretchr/testify/require"
)

func writeRef(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("ref"), 0o644))

	return path
}

func TestResolveExplicitWinsForEveryAgent(t *testing.T) {
	dir := t.TempDir()
	registry := agent.NewRegistry(agent.Defaults()...)

	for _, id := range agent.All() {
		writeRef(t, dir, string(id)+"_ref.wav")
	}

	explicit := writeRef(t, dir, "custom.wav")
	resolver := voice.NewResolver(dir, registry)

	for _, id := range agent.All() {
		t.Run(string(id), func(t *testing.T) {
			got, err := resolver.Resolve(voice.Request{Agent: id, Reference: explicit})
			require.NoError(t, err)
			require.Equal(t, explicit, got)
		})
	}
}

func TestResolveFallsBackToAgentDefault(t *testing.T) {
	dir := t.TempDir()
	registry := agent.NewRegistry(agent.Defaults()...)

	def := writeRef(t, dir, "miss_ref.wav")
	resolver := voice.NewResolver(dir, registry)

	// missing explicit reference falls through to the default
	got, err := resolver.Resolve(voice.Request{
		Agent:     agent.Miss,
		Reference: filepath.Join(dir, "does-not-exist.wav"),
	})
	require.NoError(t, err)
	require.Equal(t, def, got)
}

func TestResolveMissingDefaultFails(t *testing.T) {
	dir := t.TempDir()
	registry := agent.NewRegistry(agent.Defaults()...)
	resolver := voice.NewResolver(dir, registry)

	_, err := resolver.Resolve(voice.Request{Agent: agent.Atlas})

	var missing *voice.MissingReferenceError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, agent.Atlas, missing.Agent)
}
