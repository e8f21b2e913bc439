package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"notary-api/internal/app/model"
)

func TestCreateAgentRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		valid    bool
	}{
		{"openai", model.ProviderOpenAI, true},
		{"google_ai", model.ProviderGoogleAI, true},
		{"aws_bedrock", model.ProviderBedrock, true},
		{"lowercase_rejected", "openai", false},
		{"unknown_rejected", "AZURE", false},
		{"empty_rejected", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &CreateAgentRequest{
				AgentName: "agent",
				Provider:  tt.provider,
				ModelName: model.WhisperModel,
			}
			err := req.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUpdateAgentRequest_Validate(t *testing.T) {
	valid := model.ProviderOpenAI
	invalid := "whisper"

	assert.NoError(t, (&UpdateAgentRequest{}).Validate(), "empty update carries no provider to check")
	assert.NoError(t, (&UpdateAgentRequest{Provider: &valid}).Validate())
	assert.Error(t, (&UpdateAgentRequest{Provider: &invalid}).Validate())
}
