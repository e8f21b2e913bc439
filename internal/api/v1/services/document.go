package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"notary-api/internal/api/errors"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/app/model"
	"notary-api/internal/app/render"
	"notary-api/internal/app/repository"
)

// DocumentServiceImpl implements DocumentService. Documents created from a
// template get their text assembled from the template's ordered sections
// with dynamic_data substituted into the placeholders.
type DocumentServiceImpl struct {
	documents    repository.DocumentDAO
	templates    repository.TemplateDAO
	sections     repository.SectionDAO
	compositions repository.CompositionDAO
	types        repository.DocumentTypeDAO
}

// NewDocumentService creates a new document service
func NewDocumentService(
	documents repository.DocumentDAO,
	templates repository.TemplateDAO,
	sections repository.SectionDAO,
	compositions repository.CompositionDAO,
	types repository.DocumentTypeDAO,
) DocumentService {
	return &DocumentServiceImpl{
		documents:    documents,
		templates:    templates,
		sections:     sections,
		compositions: compositions,
		types:        types,
	}
}

func (s *DocumentServiceImpl) ListDocuments(ctx context.Context) ([]dto.DocumentResponse, error) {
	documents, err := s.documents.GetAll(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list documents")
	}
	return dto.ToDocumentResponses(documents), nil
}

func (s *DocumentServiceImpl) GetDocument(ctx context.Context, id uuid.UUID) (*dto.DocumentResponse, error) {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to get document")
	}
	if doc == nil {
		return nil, errors.NewNotFoundError("Document")
	}
	resp := dto.ToDocumentResponse(doc)
	return &resp, nil
}

// assemble renders the template's sections in order with data substituted.
func (s *DocumentServiceImpl) assemble(ctx context.Context, templateID uuid.UUID, data map[string]any) (string, error) {
	compositions, err := s.compositions.GetByTemplateID(ctx, templateID)
	if err != nil {
		return "", errors.NewInternalError("Failed to load template sections")
	}

	parts := make([]string, 0, len(compositions))
	for _, c := range compositions {
		section, err := s.sections.GetByID(ctx, c.SectionID)
		if err != nil {
			return "", errors.NewInternalError("Failed to load template sections")
		}
		if section == nil {
			continue
		}
		parts = append(parts, render.ReplacePlaceholders(section.SectionContentTemplate, data))
	}
	return strings.Join(parts, "\n"), nil
}

func (s *DocumentServiceImpl) CreateDocument(ctx context.Context, req *dto.CreateDocumentRequest, createdBy uuid.UUID) (*dto.DocumentResponse, error) {
	doc := &model.Document{
		DocumentName: req.DocumentName,
		TextContent:  req.TextContent,
		DynamicData:  req.DynamicData,
		CreatedBy:    &createdBy,
	}
	if doc.DynamicData == nil {
		doc.DynamicData = map[string]any{}
	}

	if req.DocumentTypeID != "" {
		typeID, err := uuid.Parse(req.DocumentTypeID)
		if err != nil {
			return nil, errors.NewBadRequestError("Invalid document type ID")
		}
		dt, err := s.types.GetByID(ctx, typeID)
		if err != nil {
			return nil, errors.NewInternalError("Failed to check document type")
		}
		if dt == nil {
			return nil, errors.NewValidationError("Invalid document request", map[string]string{
				"document_type_id": "document type does not exist",
			})
		}
		doc.DocumentTypeID = &typeID
	}

	if req.TemplateID != "" {
		templateID, err := uuid.Parse(req.TemplateID)
		if err != nil {
			return nil, errors.NewBadRequestError("Invalid template ID")
		}
		template, err := s.templates.GetByID(ctx, templateID)
		if err != nil {
			return nil, errors.NewInternalError("Failed to check template")
		}
		if template == nil {
			return nil, errors.NewValidationError("Invalid document request", map[string]string{
				"template_id": "template does not exist",
			})
		}
		if !template.IsActive {
			return nil, errors.NewValidationError("Invalid document request", map[string]string{
				"template_id": "template is not active",
			})
		}
		doc.TemplateID = &templateID

		assembled, err := s.assemble(ctx, templateID, doc.DynamicData)
		if err != nil {
			return nil, err
		}
		doc.TextContent = assembled
	}

	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, errors.NewInternalError("Failed to create document")
	}

	resp := dto.ToDocumentResponse(doc)
	return &resp, nil
}

func (s *DocumentServiceImpl) UpdateDocument(ctx context.Context, id uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	update := repository.DocumentUpdate{
		DocumentName: req.DocumentName,
		TextContent:  req.TextContent,
		DynamicData:  req.DynamicData,
	}

	if req.DocumentTypeID != nil {
		typeID, err := uuid.Parse(*req.DocumentTypeID)
		if err != nil {
			return nil, errors.NewBadRequestError("Invalid document type ID")
		}
		dt, err := s.types.GetByID(ctx, typeID)
		if err != nil {
			return nil, errors.NewInternalError("Failed to check document type")
		}
		if dt == nil {
			return nil, errors.NewValidationError("Invalid document request", map[string]string{
				"document_type_id": "document type does not exist",
			})
		}
		update.DocumentTypeID = &typeID
	}

	if req.TemplateID != nil {
		templateID, err := uuid.Parse(*req.TemplateID)
		if err != nil {
			return nil, errors.NewBadRequestError("Invalid template ID")
		}
		template, err := s.templates.GetByID(ctx, templateID)
		if err != nil {
			return nil, errors.NewInternalError("Failed to check template")
		}
		if template == nil {
			return nil, errors.NewValidationError("Invalid document request", map[string]string{
				"template_id": "template does not exist",
			})
		}
		update.TemplateID = &templateID
	}

	// New dynamic_data re-renders a templated document unless the caller
	// supplies text_content explicitly.
	if req.DynamicData != nil && req.TextContent == nil {
		current, err := s.documents.GetByID(ctx, id)
		if err != nil {
			return nil, errors.NewInternalError("Failed to get document")
		}
		if current == nil {
			return nil, errors.NewNotFoundError("Document")
		}
		templateID := current.TemplateID
		if update.TemplateID != nil {
			templateID = update.TemplateID
		}
		if templateID != nil {
			assembled, err := s.assemble(ctx, *templateID, req.DynamicData)
			if err != nil {
				return nil, err
			}
			update.TextContent = &assembled
		}
	}

	doc, err := s.documents.Update(ctx, id, update)
	if err != nil {
		return nil, errors.NewInternalError("Failed to update document")
	}
	if doc == nil {
		return nil, errors.NewNotFoundError("Document")
	}

	resp := dto.ToDocumentResponse(doc)
	return &resp, nil
}

func (s *DocumentServiceImpl) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.documents.Delete(ctx, id)
	if err != nil {
		return errors.NewInternalError("Failed to delete document")
	}
	if !deleted {
		return errors.NewNotFoundError("Document")
	}
	return nil
}
