package model

import (
	"time"

	"github.com/google/uuid"
)

// Document is rendered output: template base content plus ordered section
// content with dynamic data substituted. PDFURL is reserved; rendering to
// PDF is not implemented.
type Document struct {
	DocumentID     uuid.UUID      `json:"document_id"`
	DocumentName   string         `json:"document_name"`
	DocumentTypeID *uuid.UUID     `json:"document_type_id,omitempty"`
	TemplateID     *uuid.UUID     `json:"template_id,omitempty"`
	TextContent    string         `json:"text_content"`
	PDFURL         *string        `json:"pdf_url,omitempty"`
	DynamicData    map[string]any `json:"dynamic_data"`
	CreatedBy      *uuid.UUID     `json:"created_by,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
