package model

import (
	"time"

	"github.com/google/uuid"
)

// Supported AI providers. AWS_BEDROCK is accepted as configuration but has
// no runtime integration yet.
const (
	ProviderOpenAI   = "OPENAI"
	ProviderGoogleAI = "GOOGLE_AI"
	ProviderBedrock  = "AWS_BEDROCK"
)

// WhisperModel is the only model accepted for transcription agents.
const WhisperModel = "whisper-1"

// AgentConfiguration describes an AI agent usable for transcription.
// At most one agent may be the default, and the default must be active.
type AgentConfiguration struct {
	AgentID          uuid.UUID      `json:"agent_id"`
	AgentName        string         `json:"agent_name"`
	Provider         string         `json:"provider"`
	ModelName        string         `json:"model_name"`
	APIBaseURL       string         `json:"api_base_url,omitempty"`
	APIKeySecretName string         `json:"api_key_secret_name,omitempty"`
	ConfigJSON       map[string]any `json:"config_json"`
	IsActive         bool           `json:"is_active"`
	IsDefault        bool           `json:"is_default"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// SegmentDurationMS returns the per-agent segment duration override from
// config_json, or 0 when the agent does not override it.
func (a *AgentConfiguration) SegmentDurationMS() int {
	if a.ConfigJSON == nil {
		return 0
	}
	switch v := a.ConfigJSON["segment_duration_ms"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
