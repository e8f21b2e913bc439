// Package repository defines the persistence interfaces for the notary
// domain. The server uses the Postgres implementation under pg/; the batch
// CLI records local dictation runs through the SQLite DAO under sqlite/.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"notary-api/internal/app/model"
)

// Sentinel errors translated from driver-specific constraint violations.
var (
	ErrDuplicate = errors.New("duplicate key")
	ErrInUse     = errors.New("resource is referenced by other rows")
)

// RoleDAO persists access roles.
type RoleDAO interface {
	GetAll(ctx context.Context) ([]model.Role, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	GetByName(ctx context.Context, name string) (*model.Role, error)
	Create(ctx context.Context, role *model.Role) error
	Update(ctx context.Context, id uuid.UUID, update RoleUpdate) (*model.Role, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// RoleUpdate carries the patchable role fields.
type RoleUpdate struct {
	RoleName    *string
	Description *string
}

// UserDAO persists users.
type UserDAO interface {
	GetAll(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// UserUpdate carries the patchable user fields.
type UserUpdate struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	IsActive  *bool
	RoleID    *uuid.UUID
}

// AgentDAO persists AI agent configurations.
type AgentDAO interface {
	GetAll(ctx context.Context) ([]model.AgentConfiguration, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.AgentConfiguration, error)
	GetByName(ctx context.Context, name string) (*model.AgentConfiguration, error)
	GetDefault(ctx context.Context) (*model.AgentConfiguration, error)
	// GetActiveExcept lists active agents other than the given one, used
	// when the default needs a successor.
	GetActiveExcept(ctx context.Context, id uuid.UUID) ([]model.AgentConfiguration, error)
	Create(ctx context.Context, agent *model.AgentConfiguration) error
	Update(ctx context.Context, id uuid.UUID, update AgentUpdate) (*model.AgentConfiguration, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// SetDefault atomically makes the given agent the single default.
	SetDefault(ctx context.Context, id uuid.UUID) error
}

// AgentUpdate carries the patchable agent fields.
type AgentUpdate struct {
	AgentName        *string
	Provider         *string
	ModelName        *string
	APIBaseURL       *string
	APIKeySecretName *string
	ConfigJSON       map[string]any
	IsActive         *bool
	IsDefault        *bool
}

// TranscriptionDAO persists transcriptions.
type TranscriptionDAO interface {
	GetAll(ctx context.Context) ([]model.Transcription, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transcription, error)
	Create(ctx context.Context, t *model.Transcription) error
	Update(ctx context.Context, id uuid.UUID, update TranscriptionUpdate) (*model.Transcription, error)
	UpdateTextContent(ctx context.Context, id uuid.UUID, textContent string) (*model.Transcription, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// TranscriptionUpdate carries the patchable transcription fields.
type TranscriptionUpdate struct {
	AudioURL        *string
	TextContent     *string
	DurationSeconds *int
	Status          *string
}

// DocumentTypeDAO persists document types.
type DocumentTypeDAO interface {
	GetAll(ctx context.Context) ([]model.DocumentType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.DocumentType, error)
	GetByName(ctx context.Context, name string) (*model.DocumentType, error)
	Create(ctx context.Context, dt *model.DocumentType) error
	Update(ctx context.Context, id uuid.UUID, update DocumentTypeUpdate) (*model.DocumentType, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// DocumentTypeUpdate carries the patchable document type fields.
type DocumentTypeUpdate struct {
	TypeName    *string
	Description *string
}

// TemplateDAO persists templates.
type TemplateDAO interface {
	GetAll(ctx context.Context) ([]model.Template, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Template, error)
	GetByName(ctx context.Context, name string) (*model.Template, error)
	Create(ctx context.Context, t *model.Template) error
	Update(ctx context.Context, id uuid.UUID, update TemplateUpdate) (*model.Template, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// TemplateUpdate carries the patchable template fields.
type TemplateUpdate struct {
	TemplateName   *string
	Description    *string
	DocumentTypeID *uuid.UUID
	IsActive       *bool
}

// SectionDAO persists template sections.
type SectionDAO interface {
	GetAll(ctx context.Context) ([]model.TemplateSection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.TemplateSection, error)
	GetByName(ctx context.Context, name string) (*model.TemplateSection, error)
	Create(ctx context.Context, s *model.TemplateSection) error
	Update(ctx context.Context, id uuid.UUID, update SectionUpdate) (*model.TemplateSection, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// SectionUpdate carries the patchable section fields.
type SectionUpdate struct {
	SectionName            *string
	SectionContentTemplate *string
	VariablesSchema        map[string]any
	Description            *string
}

// CompositionDAO persists template/section composition rows.
type CompositionDAO interface {
	GetAll(ctx context.Context) ([]model.SectionComposition, error)
	GetByIDs(ctx context.Context, templateID, sectionID uuid.UUID) (*model.SectionComposition, error)
	GetByTemplateID(ctx context.Context, templateID uuid.UUID) ([]model.SectionComposition, error)
	Create(ctx context.Context, c *model.SectionComposition) error
	Update(ctx context.Context, templateID, sectionID uuid.UUID, update CompositionUpdate) (*model.SectionComposition, error)
	Delete(ctx context.Context, templateID, sectionID uuid.UUID) (bool, error)
}

// CompositionUpdate carries the patchable composition fields.
type CompositionUpdate struct {
	OrderIndex  *int
	IsMandatory *bool
}

// DocumentDAO persists documents.
type DocumentDAO interface {
	GetAll(ctx context.Context) ([]model.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error)
	Create(ctx context.Context, d *model.Document) error
	Update(ctx context.Context, id uuid.UUID, update DocumentUpdate) (*model.Document, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// DocumentUpdate carries the patchable document fields.
type DocumentUpdate struct {
	DocumentName   *string
	DocumentTypeID *uuid.UUID
	TemplateID     *uuid.UUID
	TextContent    *string
	PDFURL         *string
	DynamicData    map[string]any
}
