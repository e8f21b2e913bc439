package dto

import (
	"time"

	"notary-api/internal/app/model"
)

// CreateDocumentRequest represents the request to create a document. When
// template_id is set the text content is assembled from the template's
// sections with dynamic_data substituted into {{placeholders}}.
type CreateDocumentRequest struct {
	DocumentName   string         `json:"document_name" binding:"required,max=255"`
	DocumentTypeID string         `json:"document_type_id,omitempty" binding:"omitempty,uuid"`
	TemplateID     string         `json:"template_id,omitempty" binding:"omitempty,uuid"`
	TextContent    string         `json:"text_content,omitempty"`
	DynamicData    map[string]any `json:"dynamic_data,omitempty"`
}

// UpdateDocumentRequest represents a partial document update
type UpdateDocumentRequest struct {
	DocumentName   *string        `json:"document_name,omitempty" binding:"omitempty,max=255"`
	DocumentTypeID *string        `json:"document_type_id,omitempty" binding:"omitempty,uuid"`
	TemplateID     *string        `json:"template_id,omitempty" binding:"omitempty,uuid"`
	TextContent    *string        `json:"text_content,omitempty"`
	DynamicData    map[string]any `json:"dynamic_data,omitempty"`
}

// DocumentResponse represents a document in API responses
type DocumentResponse struct {
	DocumentID     string         `json:"document_id"`
	DocumentName   string         `json:"document_name"`
	DocumentTypeID string         `json:"document_type_id,omitempty"`
	TemplateID     string         `json:"template_id,omitempty"`
	TextContent    string         `json:"text_content"`
	PDFURL         *string        `json:"pdf_url"`
	DynamicData    map[string]any `json:"dynamic_data"`
	CreatedBy      string         `json:"created_by,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ToDocumentResponse converts a model to response DTO
func ToDocumentResponse(d *model.Document) DocumentResponse {
	resp := DocumentResponse{
		DocumentID:   d.DocumentID.String(),
		DocumentName: d.DocumentName,
		TextContent:  d.TextContent,
		PDFURL:       d.PDFURL,
		DynamicData:  d.DynamicData,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.DocumentTypeID != nil {
		resp.DocumentTypeID = d.DocumentTypeID.String()
	}
	if d.TemplateID != nil {
		resp.TemplateID = d.TemplateID.String()
	}
	if d.CreatedBy != nil {
		resp.CreatedBy = d.CreatedBy.String()
	}
	return resp
}

// ToDocumentResponses converts a slice of models to response DTOs
func ToDocumentResponses(documents []model.Document) []DocumentResponse {
	responses := make([]DocumentResponse, 0, len(documents))
	for i := range documents {
		responses = append(responses, ToDocumentResponse(&documents[i]))
	}
	return responses
}
