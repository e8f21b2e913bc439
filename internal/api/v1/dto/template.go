package dto

import (
	"time"

	"notary-api/internal/app/model"
)

// CreateTemplateRequest represents the request to create a template
type CreateTemplateRequest struct {
	TemplateName   string `json:"template_name" binding:"required,max=150"`
	Description    string `json:"description,omitempty"`
	DocumentTypeID string `json:"document_type_id,omitempty" binding:"omitempty,uuid"`
	IsActive       *bool  `json:"is_active,omitempty"`
}

// UpdateTemplateRequest represents a partial template update
type UpdateTemplateRequest struct {
	TemplateName   *string `json:"template_name,omitempty" binding:"omitempty,max=150"`
	Description    *string `json:"description,omitempty"`
	DocumentTypeID *string `json:"document_type_id,omitempty" binding:"omitempty,uuid"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// TemplateResponse represents a template in API responses
type TemplateResponse struct {
	TemplateID     string    `json:"template_id"`
	TemplateName   string    `json:"template_name"`
	Description    string    `json:"description,omitempty"`
	DocumentTypeID string    `json:"document_type_id,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedBy      string    `json:"created_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToTemplateResponse converts a model to response DTO
func ToTemplateResponse(t *model.Template) TemplateResponse {
	resp := TemplateResponse{
		TemplateID:   t.TemplateID.String(),
		TemplateName: t.TemplateName,
		Description:  t.Description,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.DocumentTypeID != nil {
		resp.DocumentTypeID = t.DocumentTypeID.String()
	}
	if t.CreatedBy != nil {
		resp.CreatedBy = t.CreatedBy.String()
	}
	return resp
}

// ToTemplateResponses converts a slice of models to response DTOs
func ToTemplateResponses(templates []model.Template) []TemplateResponse {
	responses := make([]TemplateResponse, 0, len(templates))
	for i := range templates {
		responses = append(responses, ToTemplateResponse(&templates[i]))
	}
	return responses
}
