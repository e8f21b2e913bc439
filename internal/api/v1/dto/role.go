package dto

import (
	"time"

	"notary-api/internal/app/model"
)

// CreateRoleRequest represents the request to create a role
type CreateRoleRequest struct {
	RoleName    string `json:"role_name" binding:"required,max=50"`
	Description string `json:"description,omitempty"`
}

// UpdateRoleRequest represents a partial role update
type UpdateRoleRequest struct {
	RoleName    *string `json:"role_name,omitempty" binding:"omitempty,max=50"`
	Description *string `json:"description,omitempty"`
}

// RoleResponse represents a role in API responses
type RoleResponse struct {
	RoleID      string    `json:"role_id"`
	RoleName    string    `json:"role_name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToRoleResponse converts a model to response DTO
func ToRoleResponse(r *model.Role) RoleResponse {
	return RoleResponse{
		RoleID:      r.RoleID.String(),
		RoleName:    r.RoleName,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToRoleResponses converts a slice of models to response DTOs
func ToRoleResponses(roles []model.Role) []RoleResponse {
	responses := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		responses = append(responses, ToRoleResponse(&roles[i]))
	}
	return responses
}
