package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AgentSeed describes one agent configuration to ensure at startup.
type AgentSeed struct {
	AgentName        string         `yaml:"agent_name"`
	Provider         string         `yaml:"provider"`
	ModelName        string         `yaml:"model_name"`
	APIBaseURL       string         `yaml:"api_base_url,omitempty"`
	APIKeySecretName string         `yaml:"api_key_secret_name,omitempty"`
	Config           map[string]any `yaml:"config,omitempty"`
	IsActive         bool           `yaml:"is_active"`
	IsDefault        bool           `yaml:"is_default"`
}

// AgentSeedFile is the on-disk shape of the agent seed configuration.
type AgentSeedFile struct {
	Agents []AgentSeed `yaml:"agents"`
}

// LoadAgentSeeds loads agent seed definitions from a YAML file. Seeding is
// optional; a missing path returns an empty list.
func LoadAgentSeeds(path string) ([]AgentSeed, error) {
	if path == "" {
		return nil, nil
	}

	path = os.ExpandEnv(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read agent seed file: %w", err)
	}

	var file AgentSeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse agent seed file: %w", err)
	}

	defaults := 0
	for _, a := range file.Agents {
		if a.AgentName == "" || a.Provider == "" || a.ModelName == "" {
			return nil, fmt.Errorf("agent seed entries require agent_name, provider and model_name")
		}
		if a.IsDefault {
			defaults++
		}
	}
	if defaults > 1 {
		return nil, fmt.Errorf("agent seed file declares %d default agents, at most one allowed", defaults)
	}

	return file.Agents, nil
}
