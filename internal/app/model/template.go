package model

import (
	"time"

	"github.com/google/uuid"
)

// Template is a named document blueprint assembled from ordered sections.
type Template struct {
	TemplateID     uuid.UUID  `json:"template_id"`
	TemplateName   string     `json:"template_name"`
	Description    string     `json:"description,omitempty"`
	DocumentTypeID *uuid.UUID `json:"document_type_id,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedBy      *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TemplateSection is a reusable block of template content with
// {{placeholder}} variables.
type TemplateSection struct {
	SectionID              uuid.UUID      `json:"section_id"`
	SectionName            string         `json:"section_name"`
	SectionContentTemplate string         `json:"section_content_template"`
	VariablesSchema        map[string]any `json:"variables_schema"`
	Description            string         `json:"description,omitempty"`
}

// SectionComposition links a section into a template at a position.
// (template_id, order_index) is unique within a template.
type SectionComposition struct {
	TemplateID  uuid.UUID `json:"template_id"`
	SectionID   uuid.UUID `json:"section_id"`
	OrderIndex  int       `json:"order_index"`
	IsMandatory bool      `json:"is_mandatory"`
}
