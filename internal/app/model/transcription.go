package model

import (
	"time"

	"github.com/google/uuid"
)

// Transcription statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Transcription is the persisted result of transcribing one audio upload.
type Transcription struct {
	TranscriptionID uuid.UUID  `json:"transcription_id"`
	AudioURL        string     `json:"audio_url"`
	TextContent     string     `json:"text_content"`
	DurationSeconds int        `json:"duration_seconds"`
	Status          string     `json:"status"`
	AgentID         *uuid.UUID `json:"agent_id,omitempty"`
	CreatedBy       *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
