package services

import (
	"context"

	"github.com/google/uuid"
	"notary-api/internal/api/errors"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// CompositionServiceImpl implements CompositionService. Each row places a
// section at a unique order_index within its template.
type CompositionServiceImpl struct {
	compositions repository.CompositionDAO
	templates    repository.TemplateDAO
	sections     repository.SectionDAO
}

// NewCompositionService creates a new composition service
func NewCompositionService(compositions repository.CompositionDAO, templates repository.TemplateDAO, sections repository.SectionDAO) CompositionService {
	return &CompositionServiceImpl{
		compositions: compositions,
		templates:    templates,
		sections:     sections,
	}
}

func (s *CompositionServiceImpl) ListCompositions(ctx context.Context) ([]dto.CompositionResponse, error) {
	compositions, err := s.compositions.GetAll(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list compositions")
	}
	return dto.ToCompositionResponses(compositions), nil
}

func (s *CompositionServiceImpl) ListCompositionsByTemplate(ctx context.Context, templateID uuid.UUID) ([]dto.CompositionResponse, error) {
	template, err := s.templates.GetByID(ctx, templateID)
	if err != nil {
		return nil, errors.NewInternalError("Failed to check template")
	}
	if template == nil {
		return nil, errors.NewNotFoundError("Template")
	}

	compositions, err := s.compositions.GetByTemplateID(ctx, templateID)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list compositions")
	}
	return dto.ToCompositionResponses(compositions), nil
}

func (s *CompositionServiceImpl) GetComposition(ctx context.Context, templateID, sectionID uuid.UUID) (*dto.CompositionResponse, error) {
	c, err := s.compositions.GetByIDs(ctx, templateID, sectionID)
	if err != nil {
		return nil, errors.NewInternalError("Failed to get composition")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("Composition")
	}
	resp := dto.ToCompositionResponse(c)
	return &resp, nil
}

func (s *CompositionServiceImpl) CreateComposition(ctx context.Context, req *dto.CreateCompositionRequest) (*dto.CompositionResponse, error) {
	templateID, err := uuid.Parse(req.TemplateID)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid template ID")
	}
	sectionID, err := uuid.Parse(req.SectionID)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid section ID")
	}

	template, err := s.templates.GetByID(ctx, templateID)
	if err != nil {
		return nil, errors.NewInternalError("Failed to check template")
	}
	if template == nil {
		return nil, errors.NewValidationError("Invalid composition request", map[string]string{
			"template_id": "template does not exist",
		})
	}
	section, err := s.sections.GetByID(ctx, sectionID)
	if err != nil {
		return nil, errors.NewInternalError("Failed to check section")
	}
	if section == nil {
		return nil, errors.NewValidationError("Invalid composition request", map[string]string{
			"section_id": "section does not exist",
		})
	}

	// Reject a taken order_index up front for a clearer error than the
	// unique constraint gives.
	existing, err := s.compositions.GetByTemplateID(ctx, templateID)
	if err != nil {
		return nil, errors.NewInternalError("Failed to check composition order")
	}
	for _, row := range existing {
		if row.SectionID == sectionID {
			return nil, errors.NewConflictError("Section is already part of this template")
		}
		if row.OrderIndex == req.OrderIndex {
			return nil, errors.NewConflictError("Order index is already taken in this template")
		}
	}

	c := &model.SectionComposition{
		TemplateID:  templateID,
		SectionID:   sectionID,
		OrderIndex:  req.OrderIndex,
		IsMandatory: true,
	}
	if req.IsMandatory != nil {
		c.IsMandatory = *req.IsMandatory
	}
	if err := s.compositions.Create(ctx, c); err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("Composition already exists")
		}
		return nil, errors.NewInternalError("Failed to create composition")
	}

	resp := dto.ToCompositionResponse(c)
	return &resp, nil
}

func (s *CompositionServiceImpl) UpdateComposition(ctx context.Context, templateID, sectionID uuid.UUID, req *dto.UpdateCompositionRequest) (*dto.CompositionResponse, error) {
	if req.OrderIndex != nil {
		existing, err := s.compositions.GetByTemplateID(ctx, templateID)
		if err != nil {
			return nil, errors.NewInternalError("Failed to check composition order")
		}
		for _, row := range existing {
			if row.SectionID != sectionID && row.OrderIndex == *req.OrderIndex {
				return nil, errors.NewConflictError("Order index is already taken in this template")
			}
		}
	}

	c, err := s.compositions.Update(ctx, templateID, sectionID, repository.CompositionUpdate{
		OrderIndex:  req.OrderIndex,
		IsMandatory: req.IsMandatory,
	})
	if err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("Order index is already taken in this template")
		}
		return nil, errors.NewInternalError("Failed to update composition")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("Composition")
	}

	resp := dto.ToCompositionResponse(c)
	return &resp, nil
}

func (s *CompositionServiceImpl) DeleteComposition(ctx context.Context, templateID, sectionID uuid.UUID) error {
	deleted, err := s.compositions.Delete(ctx, templateID, sectionID)
	if err != nil {
		return errors.NewInternalError("Failed to delete composition")
	}
	if !deleted {
		return errors.NewNotFoundError("Composition")
	}
	return nil
}
