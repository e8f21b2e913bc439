package services

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"notary-api/internal/api/v1/dto"
)

// RoleService defines the interface for role operations
type RoleService interface {
	ListRoles(ctx context.Context) ([]dto.RoleResponse, error)
	GetRole(ctx context.Context, id uuid.UUID) (*dto.RoleResponse, error)
	CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error)
	UpdateRole(ctx context.Context, id uuid.UUID, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error)
	DeleteRole(ctx context.Context, id uuid.UUID) error
}

// UserService defines the interface for user operations
type UserService interface {
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// AgentService defines the interface for agent configuration operations
type AgentService interface {
	ListAgents(ctx context.Context) ([]dto.AgentResponse, error)
	GetAgent(ctx context.Context, id uuid.UUID) (*dto.AgentResponse, error)
	CreateAgent(ctx context.Context, req *dto.CreateAgentRequest) (*dto.AgentResponse, error)
	UpdateAgent(ctx context.Context, id uuid.UUID, req *dto.UpdateAgentRequest) (*dto.AgentResponse, error)
	DeleteAgent(ctx context.Context, id uuid.UUID) error
	TestAgent(ctx context.Context, id uuid.UUID) (*dto.AgentTestResponse, error)
}

// TranscriptionService defines the interface for transcription operations
type TranscriptionService interface {
	Transcribe(ctx context.Context, file multipart.File, header *multipart.FileHeader, userID uuid.UUID, agentID *uuid.UUID) (*dto.TranscriptionResponse, error)
	ListTranscriptions(ctx context.Context) ([]dto.TranscriptionResponse, error)
	GetTranscription(ctx context.Context, id uuid.UUID) (*dto.TranscriptionResponse, error)
	UpdateTranscription(ctx context.Context, id uuid.UUID, req *dto.UpdateTranscriptionRequest) (*dto.TranscriptionResponse, error)
	DeleteTranscription(ctx context.Context, id uuid.UUID) error
}

// DocumentTypeService defines the interface for document type operations
type DocumentTypeService interface {
	ListDocumentTypes(ctx context.Context) ([]dto.DocumentTypeResponse, error)
	GetDocumentType(ctx context.Context, id uuid.UUID) (*dto.DocumentTypeResponse, error)
	CreateDocumentType(ctx context.Context, req *dto.CreateDocumentTypeRequest) (*dto.DocumentTypeResponse, error)
	UpdateDocumentType(ctx context.Context, id uuid.UUID, req *dto.UpdateDocumentTypeRequest) (*dto.DocumentTypeResponse, error)
	DeleteDocumentType(ctx context.Context, id uuid.UUID) error
}

// TemplateService defines the interface for template operations
type TemplateService interface {
	ListTemplates(ctx context.Context) ([]dto.TemplateResponse, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (*dto.TemplateResponse, error)
	CreateTemplate(ctx context.Context, req *dto.CreateTemplateRequest, createdBy uuid.UUID) (*dto.TemplateResponse, error)
	UpdateTemplate(ctx context.Context, id uuid.UUID, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
}

// SectionService defines the interface for template section operations
type SectionService interface {
	ListSections(ctx context.Context) ([]dto.SectionResponse, error)
	GetSection(ctx context.Context, id uuid.UUID) (*dto.SectionResponse, error)
	CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*dto.SectionResponse, error)
	UpdateSection(ctx context.Context, id uuid.UUID, req *dto.UpdateSectionRequest) (*dto.SectionResponse, error)
	DeleteSection(ctx context.Context, id uuid.UUID) error
}

// CompositionService defines the interface for template composition operations
type CompositionService interface {
	ListCompositions(ctx context.Context) ([]dto.CompositionResponse, error)
	ListCompositionsByTemplate(ctx context.Context, templateID uuid.UUID) ([]dto.CompositionResponse, error)
	GetComposition(ctx context.Context, templateID, sectionID uuid.UUID) (*dto.CompositionResponse, error)
	CreateComposition(ctx context.Context, req *dto.CreateCompositionRequest) (*dto.CompositionResponse, error)
	UpdateComposition(ctx context.Context, templateID, sectionID uuid.UUID, req *dto.UpdateCompositionRequest) (*dto.CompositionResponse, error)
	DeleteComposition(ctx context.Context, templateID, sectionID uuid.UUID) error
}

// DocumentService defines the interface for document operations
type DocumentService interface {
	ListDocuments(ctx context.Context) ([]dto.DocumentResponse, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*dto.DocumentResponse, error)
	CreateDocument(ctx context.Context, req *dto.CreateDocumentRequest, createdBy uuid.UUID) (*dto.DocumentResponse, error)
	UpdateDocument(ctx context.Context, id uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
}
