package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"notary-api/internal/app/model"
)

func strPtr(s string) *string { return &s }

func TestUpdateTranscriptionRequest_TextOnly(t *testing.T) {
	duration := 10
	status := model.StatusCompleted

	tests := []struct {
		name     string
		req      UpdateTranscriptionRequest
		textOnly bool
	}{
		{"text_only", UpdateTranscriptionRequest{TextContent: strPtr("fixed")}, true},
		{"text_and_status", UpdateTranscriptionRequest{TextContent: strPtr("fixed"), Status: &status}, false},
		{"duration_only", UpdateTranscriptionRequest{DurationSeconds: &duration}, false},
		{"empty", UpdateTranscriptionRequest{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.textOnly, tt.req.TextOnly())
		})
	}
}

func TestUpdateTranscriptionRequest_Validate(t *testing.T) {
	assert.Error(t, (&UpdateTranscriptionRequest{}).Validate(), "at least one field is required")
	assert.NoError(t, (&UpdateTranscriptionRequest{TextContent: strPtr("x")}).Validate())
}
