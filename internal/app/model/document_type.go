package model

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType categorizes documents and templates.
type DocumentType struct {
	DocumentTypeID uuid.UUID `json:"document_type_id"`
	TypeName       string    `json:"type_name"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
