package services

import (
	"context"

	"github.com/google/uuid"
	"notary-api/internal/api/errors"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// SectionServiceImpl implements SectionService
type SectionServiceImpl struct {
	sections repository.SectionDAO
}

// NewSectionService creates a new template section service
func NewSectionService(sections repository.SectionDAO) SectionService {
	return &SectionServiceImpl{sections: sections}
}

func (s *SectionServiceImpl) ListSections(ctx context.Context) ([]dto.SectionResponse, error) {
	sections, err := s.sections.GetAll(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list sections")
	}
	return dto.ToSectionResponses(sections), nil
}

func (s *SectionServiceImpl) GetSection(ctx context.Context, id uuid.UUID) (*dto.SectionResponse, error) {
	section, err := s.sections.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to get section")
	}
	if section == nil {
		return nil, errors.NewNotFoundError("Template section")
	}
	resp := dto.ToSectionResponse(section)
	return &resp, nil
}

func (s *SectionServiceImpl) CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	existing, err := s.sections.GetByName(ctx, req.SectionName)
	if err != nil {
		return nil, errors.NewInternalError("Failed to check section name")
	}
	if existing != nil {
		return nil, errors.NewConflictError("Section name already exists")
	}

	section := &model.TemplateSection{
		SectionName:            req.SectionName,
		SectionContentTemplate: req.SectionContentTemplate,
		VariablesSchema:        req.VariablesSchema,
		Description:            req.Description,
	}
	if section.VariablesSchema == nil {
		section.VariablesSchema = map[string]any{}
	}
	if err := s.sections.Create(ctx, section); err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("Section name already exists")
		}
		return nil, errors.NewInternalError("Failed to create section")
	}

	resp := dto.ToSectionResponse(section)
	return &resp, nil
}

func (s *SectionServiceImpl) UpdateSection(ctx context.Context, id uuid.UUID, req *dto.UpdateSectionRequest) (*dto.SectionResponse, error) {
	if req.SectionName != nil {
		existing, err := s.sections.GetByName(ctx, *req.SectionName)
		if err != nil {
			return nil, errors.NewInternalError("Failed to check section name")
		}
		if existing != nil && existing.SectionID != id {
			return nil, errors.NewConflictError("Section name already exists")
		}
	}

	section, err := s.sections.Update(ctx, id, repository.SectionUpdate{
		SectionName:            req.SectionName,
		SectionContentTemplate: req.SectionContentTemplate,
		VariablesSchema:        req.VariablesSchema,
		Description:            req.Description,
	})
	if err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("Section name already exists")
		}
		return nil, errors.NewInternalError("Failed to update section")
	}
	if section == nil {
		return nil, errors.NewNotFoundError("Template section")
	}

	resp := dto.ToSectionResponse(section)
	return &resp, nil
}

func (s *SectionServiceImpl) DeleteSection(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.sections.Delete(ctx, id)
	if err != nil {
		if err == repository.ErrInUse {
			return errors.NewConflictError("Section is used by templates and cannot be deleted")
		}
		return errors.NewInternalError("Failed to delete section")
	}
	if !deleted {
		return errors.NewNotFoundError("Template section")
	}
	return nil
}
