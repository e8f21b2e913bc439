package model

import "time"

// BatchRecord is one file processed by the local batch transcriber. Batch
// runs keep their results in a local SQLite file rather than the server
// database.
type BatchRecord struct {
	ID              int64     `json:"id"`
	FileName        string    `json:"file_name"`
	DurationSeconds int       `json:"duration_seconds"`
	TextContent     string    `json:"text_content"`
	HasError        bool      `json:"has_error"`
	ErrorMessage    string    `json:"error_message,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
