package services

import (
	"context"

	"github.com/google/uuid"
	"notary-api/internal/api/errors"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// RoleServiceImpl implements RoleService
type RoleServiceImpl struct {
	roles repository.RoleDAO
}

// NewRoleService creates a new role service
func NewRoleService(roles repository.RoleDAO) RoleService {
	return &RoleServiceImpl{roles: roles}
}

func (s *RoleServiceImpl) ListRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := s.roles.GetAll(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list roles")
	}
	return dto.ToRoleResponses(roles), nil
}

func (s *RoleServiceImpl) GetRole(ctx context.Context, id uuid.UUID) (*dto.RoleResponse, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to get role")
	}
	if role == nil {
		return nil, errors.NewNotFoundError("Role")
	}
	resp := dto.ToRoleResponse(role)
	return &resp, nil
}

func (s *RoleServiceImpl) CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	existing, err := s.roles.GetByName(ctx, req.RoleName)
	if err != nil {
		return nil, errors.NewInternalError("Failed to check role name")
	}
	if existing != nil {
		return nil, errors.NewConflictError("Role name already exists")
	}

	role := &model.Role{
		RoleName:    req.RoleName,
		Description: req.Description,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("Role name already exists")
		}
		return nil, errors.NewInternalError("Failed to create role")
	}

	resp := dto.ToRoleResponse(role)
	return &resp, nil
}

func (s *RoleServiceImpl) UpdateRole(ctx context.Context, id uuid.UUID, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	if req.RoleName != nil {
		existing, err := s.roles.GetByName(ctx, *req.RoleName)
		if err != nil {
			return nil, errors.NewInternalError("Failed to check role name")
		}
		if existing != nil && existing.RoleID != id {
			return nil, errors.NewConflictError("Role name already exists")
		}
	}

	role, err := s.roles.Update(ctx, id, repository.RoleUpdate{
		RoleName:    req.RoleName,
		Description: req.Description,
	})
	if err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("Role name already exists")
		}
		return nil, errors.NewInternalError("Failed to update role")
	}
	if role == nil {
		return nil, errors.NewNotFoundError("Role")
	}

	resp := dto.ToRoleResponse(role)
	return &resp, nil
}

func (s *RoleServiceImpl) DeleteRole(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.roles.Delete(ctx, id)
	if err != nil {
		if err == repository.ErrInUse {
			return errors.NewConflictError("Role is assigned to users and cannot be deleted")
		}
		return errors.NewInternalError("Failed to delete role")
	}
	if !deleted {
		return errors.NewNotFoundError("Role")
	}
	return nil
}
