package dto

import (
	"time"

	"notary-api/internal/api/errors"
	"notary-api/internal/app/model"
)

// CreateAgentRequest represents the request to create an agent configuration
type CreateAgentRequest struct {
	AgentName        string         `json:"agent_name" binding:"required,max=100"`
	Provider         string         `json:"provider" binding:"required"`
	ModelName        string         `json:"model_name" binding:"required,max=100"`
	APIBaseURL       string         `json:"api_base_url,omitempty" binding:"omitempty,url,max=255"`
	APIKeySecretName string         `json:"api_key_secret_name,omitempty" binding:"omitempty,max=100"`
	ConfigJSON       map[string]any `json:"config_json,omitempty"`
	IsActive         *bool          `json:"is_active,omitempty"`
	IsDefault        bool           `json:"is_default,omitempty"`
}

// Validate performs domain-specific validation
func (r *CreateAgentRequest) Validate() error {
	validationErrors := make(map[string]string)

	if !validProvider(r.Provider) {
		validationErrors["provider"] = "invalid provider specified"
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid agent configuration request", validationErrors)
	}
	return nil
}

// UpdateAgentRequest represents a partial agent configuration update
type UpdateAgentRequest struct {
	AgentName        *string        `json:"agent_name,omitempty" binding:"omitempty,max=100"`
	Provider         *string        `json:"provider,omitempty"`
	ModelName        *string        `json:"model_name,omitempty" binding:"omitempty,max=100"`
	APIBaseURL       *string        `json:"api_base_url,omitempty" binding:"omitempty,url,max=255"`
	APIKeySecretName *string        `json:"api_key_secret_name,omitempty" binding:"omitempty,max=100"`
	ConfigJSON       map[string]any `json:"config_json,omitempty"`
	IsActive         *bool          `json:"is_active,omitempty"`
	IsDefault        *bool          `json:"is_default,omitempty"`
}

// Validate performs domain-specific validation
func (r *UpdateAgentRequest) Validate() error {
	validationErrors := make(map[string]string)

	if r.Provider != nil && !validProvider(*r.Provider) {
		validationErrors["provider"] = "invalid provider specified"
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid agent configuration request", validationErrors)
	}
	return nil
}

func validProvider(provider string) bool {
	switch provider {
	case model.ProviderOpenAI, model.ProviderGoogleAI, model.ProviderBedrock:
		return true
	}
	return false
}

// AgentResponse represents an agent configuration in API responses
type AgentResponse struct {
	AgentID          string         `json:"agent_id"`
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

// AgentTestResponse reports the outcome of a connectivity probe
type AgentTestResponse struct {
	AgentID   string `json:"agent_id"`
	AgentName string `json:"agent_name"`
	Provider  string `json:"provider"`
	Reachable bool   `json:"reachable"`
	Error     string `json:"error,omitempty"`
}

// ToAgentResponse converts a model to response DTO
func ToAgentResponse(a *model.AgentConfiguration) AgentResponse {
	return AgentResponse{
		AgentID:          a.AgentID.String(),
		AgentName:        a.AgentName,
		Provider:         a.Provider,
		ModelName:        a.ModelName,
		APIBaseURL:       a.APIBaseURL,
		APIKeySecretName: a.APIKeySecretName,
		ConfigJSON:       a.ConfigJSON,
		IsActive:         a.IsActive,
		IsDefault:        a.IsDefault,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// ToAgentResponses converts a slice of models to response DTOs
func ToAgentResponses(agents []model.AgentConfiguration) []AgentResponse {
	responses := make([]AgentResponse, 0, len(agents))
	for i := range agents {
		responses = append(responses, ToAgentResponse(&agents[i]))
	}
	return responses
}
