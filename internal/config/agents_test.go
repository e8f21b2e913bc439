package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAgentSeeds(t *testing.T) {
	path := writeSeedFile(t, `
agents:
  - agent_name: openai-default
    provider: OPENAI
    model_name: whisper-1
    is_active: true
    is_default: true
  - agent_name: gemini-backup
    provider: GOOGLE_AI
    model_name: gemini-1.5-flash
    config:
      segment_duration_ms: 60000
    is_active: true
    is_default: false
`)

	seeds, err := LoadAgentSeeds(path)
	require.NoError(t, err)
	require.Len(t, seeds, 2)

	assert.Equal(t, "openai-default", seeds[0].AgentName)
	assert.True(t, seeds[0].IsDefault)
	assert.Equal(t, 60000, seeds[1].Config["segment_duration_ms"])
}

func TestLoadAgentSeeds_MissingFileIsEmpty(t *testing.T) {
	seeds, err := LoadAgentSeeds(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, seeds)
}

func TestLoadAgentSeeds_EmptyPathIsEmpty(t *testing.T) {
	seeds, err := LoadAgentSeeds("")
	require.NoError(t, err)
	assert.Empty(t, seeds)
}

func TestLoadAgentSeeds_RejectsTwoDefaults(t *testing.T) {
	path := writeSeedFile(t, `
agents:
  - agent_name: a
    provider: OPENAI
    model_name: whisper-1
    is_active: true
    is_default: true
  - agent_name: b
    provider: OPENAI
    model_name: whisper-1
    is_active: true
    is_default: true
`)

	_, err := LoadAgentSeeds(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default")
}

func TestLoadAgentSeeds_RequiresNameProviderModel(t *testing.T) {
	path := writeSeedFile(t, `
agents:
  - agent_name: incomplete
    provider: OPENAI
`)

	_, err := LoadAgentSeeds(path)
	require.Error(t, err)
}
