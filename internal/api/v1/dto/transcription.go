package dto

import (
	"time"

	"notary-api/internal/api/errors"
	"notary-api/internal/app/model"
)

// TranscribeForm represents the multipart form for POST /transcriptions.
// The audio file itself arrives as the "file" part.
type TranscribeForm struct {
	AgentID string `form:"agent_id" binding:"omitempty,uuid"`
}

// UpdateTranscriptionRequest represents a partial transcription update.
// A request carrying only text_content is treated as a correction of the
// transcribed text and leaves everything else untouched.
type UpdateTranscriptionRequest struct {
	AudioURL        *string `json:"audio_url,omitempty" binding:"omitempty,max=512"`
	TextContent     *string `json:"text_content,omitempty"`
	DurationSeconds *int    `json:"duration_seconds,omitempty" binding:"omitempty,min=0"`
	Status          *string `json:"status,omitempty" binding:"omitempty,oneof=pending completed failed"`
}

// TextOnly reports whether the update touches nothing but text_content.
func (r *UpdateTranscriptionRequest) TextOnly() bool {
	return r.TextContent != nil && r.AudioURL == nil && r.DurationSeconds == nil && r.Status == nil
}

// Validate performs domain-specific validation
func (r *UpdateTranscriptionRequest) Validate() error {
	if r.AudioURL == nil && r.TextContent == nil && r.DurationSeconds == nil && r.Status == nil {
		return errors.NewValidationError("Invalid transcription update", map[string]string{
			"body": "at least one field must be provided",
		})
	}
	return nil
}

// TranscriptionResponse represents a transcription in API responses
type TranscriptionResponse struct {
	TranscriptionID string    `json:"transcription_id"`
	AudioURL        string    `json:"audio_url"`
	TextContent     string    `json:"text_content,omitempty"`
	DurationSeconds int       `json:"duration_seconds"`
	Status          string    `json:"status"`
	AgentID         string    `json:"agent_id,omitempty"`
	CreatedBy       string    `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToTranscriptionResponse converts a model to response DTO
func ToTranscriptionResponse(t *model.Transcription) TranscriptionResponse {
	resp := TranscriptionResponse{
		TranscriptionID: t.TranscriptionID.String(),
		AudioURL:        t.AudioURL,
		TextContent:     t.TextContent,
		DurationSeconds: t.DurationSeconds,
		Status:          t.Status,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if t.AgentID != nil {
		resp.AgentID = t.AgentID.String()
	}
	if t.CreatedBy != nil {
		resp.CreatedBy = t.CreatedBy.String()
	}
	return resp
}

// ToTranscriptionResponses converts a slice of models to response DTOs
func ToTranscriptionResponses(transcriptions []model.Transcription) []TranscriptionResponse {
	responses := make([]TranscriptionResponse, 0, len(transcriptions))
	for i := range transcriptions {
		responses = append(responses, ToTranscriptionResponse(&transcriptions[i]))
	}
	return responses
}
