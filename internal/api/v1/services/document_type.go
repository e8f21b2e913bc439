package services

import (
	"context"

	"github.com/google/uuid"
	"notary-api/internal/api/errors"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// DocumentTypeServiceImpl implements DocumentTypeService
type DocumentTypeServiceImpl struct {
	types repository.DocumentTypeDAO
}

// NewDocumentTypeService creates a new document type service
func NewDocumentTypeService(types repository.DocumentTypeDAO) DocumentTypeService {
	return &DocumentTypeServiceImpl{types: types}
}

func (s *DocumentTypeServiceImpl) ListDocumentTypes(ctx context.Context) ([]dto.DocumentTypeResponse, error) {
	types, err := s.types.GetAll(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list document types")
	}
	return dto.ToDocumentTypeResponses(types), nil
}

func (s *DocumentTypeServiceImpl) GetDocumentType(ctx context.Context, id uuid.UUID) (*dto.DocumentTypeResponse, error) {
	dt, err := s.types.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to get document type")
	}
	if dt == nil {
		return nil, errors.NewNotFoundError("Document type")
	}
	resp := dto.ToDocumentTypeResponse(dt)
	return &resp, nil
}

func (s *DocumentTypeServiceImpl) CreateDocumentType(ctx context.Context, req *dto.CreateDocumentTypeRequest) (*dto.DocumentTypeResponse, error) {
	existing, err := s.types.GetByName(ctx, req.TypeName)
	if err != nil {
		return nil, errors.NewInternalError("Failed to check type name")
	}
	if existing != nil {
		return nil, errors.NewConflictError("Document type name already exists")
	}

	dt := &model.DocumentType{
		TypeName:    req.TypeName,
		Description: req.Description,
	}
	if err := s.types.Create(ctx, dt); err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("Document type name already exists")
		}
		return nil, errors.NewInternalError("Failed to create document type")
	}

	resp := dto.ToDocumentTypeResponse(dt)
	return &resp, nil
}

func (s *DocumentTypeServiceImpl) UpdateDocumentType(ctx context.Context, id uuid.UUID, req *dto.UpdateDocumentTypeRequest) (*dto.DocumentTypeResponse, error) {
	if req.TypeName != nil {
		existing, err := s.types.GetByName(ctx, *req.TypeName)
		if err != nil {
			return nil, errors.NewInternalError("Failed to check type name")
		}
		if existing != nil && existing.DocumentTypeID != id {
			return nil, errors.NewConflictError("Document type name already exists")
		}
	}

	dt, err := s.types.Update(ctx, id, repository.DocumentTypeUpdate{
		TypeName:    req.TypeName,
		Description: req.Description,
	})
	if err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("Document type name already exists")
		}
		return nil, errors.NewInternalError("Failed to update document type")
	}
	if dt == nil {
		return nil, errors.NewNotFoundError("Document type")
	}

	resp := dto.ToDocumentTypeResponse(dt)
	return &resp, nil
}

func (s *DocumentTypeServiceImpl) DeleteDocumentType(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.types.Delete(ctx, id)
	if err != nil {
		if err == repository.ErrInUse {
			return errors.NewConflictError("Document type is in use and cannot be deleted")
		}
		return errors.NewInternalError("Failed to delete document type")
	}
	if !deleted {
		return errors.NewNotFoundError("Document type")
	}
	return nil
}
