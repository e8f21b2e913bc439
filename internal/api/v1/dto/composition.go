package dto

import (
	"notary-api/internal/app/model"
)

// CreateCompositionRequest links a section into a template at a position
type CreateCompositionRequest struct {
	TemplateID  string `json:"template_id" binding:"required,uuid"`
	SectionID   string `json:"section_id" binding:"required,uuid"`
	OrderIndex  int    `json:"order_index" binding:"min=0"`
	IsMandatory *bool  `json:"is_mandatory,omitempty"`
}

// UpdateCompositionRequest represents a partial composition update
type UpdateCompositionRequest struct {
	OrderIndex  *int  `json:"order_index,omitempty" binding:"omitempty,min=0"`
	IsMandatory *bool `json:"is_mandatory,omitempty"`
}

// CompositionResponse represents a composition row in API responses
type CompositionResponse struct {
	TemplateID  string `json:"template_id"`
	SectionID   string `json:"section_id"`
	OrderIndex  int    `json:"order_index"`
	IsMandatory bool   `json:"is_mandatory"`
}

// ToCompositionResponse converts a model to response DTO
func ToCompositionResponse(c *model.SectionComposition) CompositionResponse {
	return CompositionResponse{
		TemplateID:  c.TemplateID.String(),
		SectionID:   c.SectionID.String(),
		OrderIndex:  c.OrderIndex,
		IsMandatory: c.IsMandatory,
	}
}

// ToCompositionResponses converts a slice of models to response DTOs
func ToCompositionResponses(compositions []model.SectionComposition) []CompositionResponse {
	responses := make([]CompositionResponse, 0, len(compositions))
	for i := range compositions {
		responses = append(responses, ToCompositionResponse(&compositions[i]))
	}
	return responses
}
