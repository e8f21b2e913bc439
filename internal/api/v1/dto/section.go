package dto

import (
	"notary-api/internal/app/model"
	"notary-api/internal/app/render"
)

// CreateSectionRequest represents the request to create a template section
type CreateSectionRequest struct {
	SectionName            string         `json:"section_name" binding:"required,max=150"`
	SectionContentTemplate string         `json:"section_content_template" binding:"required"`
	VariablesSchema        map[string]any `json:"variables_schema,omitempty"`
	Description            string         `json:"description,omitempty"`
}

// UpdateSectionRequest represents a partial template section update
type UpdateSectionRequest struct {
	SectionName            *string        `json:"section_name,omitempty" binding:"omitempty,max=150"`
	SectionContentTemplate *string        `json:"section_content_template,omitempty"`
	VariablesSchema        map[string]any `json:"variables_schema,omitempty"`
	Description            *string        `json:"description,omitempty"`
}

// SectionResponse represents a template section in API responses.
// Placeholders lists the {{variable}} names found in the content.
type SectionResponse struct {
	SectionID              string         `json:"section_id"`
	SectionName            string         `json:"section_name"`
	SectionContentTemplate string         `json:"section_content_template"`
	VariablesSchema        map[string]any `json:"variables_schema"`
	Description            string         `json:"description,omitempty"`
	Placeholders           []string       `json:"placeholders,omitempty"`
}

// ToSectionResponse converts a model to response DTO
func ToSectionResponse(s *model.TemplateSection) SectionResponse {
	return SectionResponse{
		SectionID:              s.SectionID.String(),
		SectionName:            s.SectionName,
		SectionContentTemplate: s.SectionContentTemplate,
		VariablesSchema:        s.VariablesSchema,
		Description:            s.Description,
		Placeholders:           render.Placeholders(s.SectionContentTemplate),
	}
}

// ToSectionResponses converts a slice of models to response DTOs
func ToSectionResponses(sections []model.TemplateSection) []SectionResponse {
	responses := make([]SectionResponse, 0, len(sections))
	for i := range sections {
		responses = append(responses, ToSectionResponse(&sections[i]))
	}
	return responses
}
