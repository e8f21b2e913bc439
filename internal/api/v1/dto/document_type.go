package dto

import (
	"time"

	"notary-api/internal/app/model"
)

// CreateDocumentTypeRequest represents the request to create a document type
type CreateDocumentTypeRequest struct {
	TypeName    string `json:"type_name" binding:"required,max=100"`
	Description string `json:"description,omitempty"`
}

// UpdateDocumentTypeRequest represents a partial document type update
type UpdateDocumentTypeRequest struct {
	TypeName    *string `json:"type_name,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
}

// DocumentTypeResponse represents a document type in API responses
type DocumentTypeResponse struct {
	DocumentTypeID string    `json:"document_type_id"`
	TypeName       string    `json:"type_name"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToDocumentTypeResponse converts a model to response DTO
func ToDocumentTypeResponse(dt *model.DocumentType) DocumentTypeResponse {
	return DocumentTypeResponse{
		DocumentTypeID: dt.DocumentTypeID.String(),
		TypeName:       dt.TypeName,
		Description:    dt.Description,
		CreatedAt:      dt.CreatedAt,
		UpdatedAt:      dt.UpdatedAt,
	}
}

// ToDocumentTypeResponses converts a slice of models to response DTOs
func ToDocumentTypeResponses(types []model.DocumentType) []DocumentTypeResponse {
	responses := make([]DocumentTypeResponse, 0, len(types))
	for i := range types {
		responses = append(responses, ToDocumentTypeResponse(&types[i]))
	}
	return responses
}
