package services

import (
	"context"

	"github.com/google/uuid"
	"notary-api/internal/api/errors"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// TemplateServiceImpl implements TemplateService
type TemplateServiceImpl struct {
	templates repository.TemplateDAO
	types     repository.DocumentTypeDAO
}

// NewTemplateService creates a new template service
func NewTemplateService(templates repository.TemplateDAO, types repository.DocumentTypeDAO) TemplateService {
	return &TemplateServiceImpl{templates: templates, types: types}
}

func (s *TemplateServiceImpl) ListTemplates(ctx context.Context) ([]dto.TemplateResponse, error) {
	templates, err := s.templates.GetAll(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list templates")
	}
	return dto.ToTemplateResponses(templates), nil
}

func (s *TemplateServiceImpl) GetTemplate(ctx context.Context, id uuid.UUID) (*dto.TemplateResponse, error) {
	t, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to get template")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Template")
	}
	resp := dto.ToTemplateResponse(t)
	return &resp, nil
}

func (s *TemplateServiceImpl) checkDocumentType(ctx context.Context, raw string) (*uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid document type ID")
	}
	dt, err := s.types.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to check document type")
	}
	if dt == nil {
		return nil, errors.NewValidationError("Invalid template request", map[string]string{
			"document_type_id": "document type does not exist",
		})
	}
	return &id, nil
}

func (s *TemplateServiceImpl) CreateTemplate(ctx context.Context, req *dto.CreateTemplateRequest, createdBy uuid.UUID) (*dto.TemplateResponse, error) {
	existing, err := s.templates.GetByName(ctx, req.TemplateName)
	if err != nil {
		return nil, errors.NewInternalError("Failed to check template name")
	}
	if existing != nil {
		return nil, errors.NewConflictError("Template name already exists")
	}

	t := &model.Template{
		TemplateName: req.TemplateName,
		Description:  req.Description,
		IsActive:     true,
		CreatedBy:    &createdBy,
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if req.DocumentTypeID != "" {
		typeID, err := s.checkDocumentType(ctx, req.DocumentTypeID)
		if err != nil {
			return nil, err
		}
		t.DocumentTypeID = typeID
	}

	if err := s.templates.Create(ctx, t); err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("Template name already exists")
		}
		return nil, errors.NewInternalError("Failed to create template")
	}

	resp := dto.ToTemplateResponse(t)
	return &resp, nil
}

func (s *TemplateServiceImpl) UpdateTemplate(ctx context.Context, id uuid.UUID, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	if req.TemplateName != nil {
		existing, err := s.templates.GetByName(ctx, *req.TemplateName)
		if err != nil {
			return nil, errors.NewInternalError("Failed to check template name")
		}
		if existing != nil && existing.TemplateID != id {
			return nil, errors.NewConflictError("Template name already exists")
		}
	}

	update := repository.TemplateUpdate{
		TemplateName: req.TemplateName,
		Description:  req.Description,
		IsActive:     req.IsActive,
	}
	if req.DocumentTypeID != nil {
		typeID, err := s.checkDocumentType(ctx, *req.DocumentTypeID)
		if err != nil {
			return nil, err
		}
		update.DocumentTypeID = typeID
	}

	t, err := s.templates.Update(ctx, id, update)
	if err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("Template name already exists")
		}
		return nil, errors.NewInternalError("Failed to update template")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Template")
	}

	resp := dto.ToTemplateResponse(t)
	return &resp, nil
}

func (s *TemplateServiceImpl) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	// Documents keep their rows with template_id nulled; the template's
	// section compositions cascade away.
	deleted, err := s.templates.Delete(ctx, id)
	if err != nil {
		return errors.NewInternalError("Failed to delete template")
	}
	if !deleted {
		return errors.NewNotFoundError("Template")
	}
	return nil
}
