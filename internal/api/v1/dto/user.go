package dto

import (
	"time"

	"notary-api/internal/app/model"
)

// CreateUserRequest represents the request to create a user. The identity
// is provisioned in Keycloak first; role_id must reference an existing role.
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	FirstName string `json:"first_name,omitempty" binding:"omitempty,max=100"`
	LastName  string `json:"last_name,omitempty" binding:"omitempty,max=100"`
	RoleID    string `json:"role_id" binding:"required,uuid"`
}

// UpdateUserRequest represents a partial user update
type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty" binding:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email,max=255"`
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,max=100"`
	IsActive  *bool   `json:"is_active,omitempty"`
	RoleID    *string `json:"role_id,omitempty" binding:"omitempty,uuid"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	IsActive  bool      `json:"is_active"`
	RoleID    string    `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts a model to response DTO
func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		RoleID:    u.RoleID.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponses converts a slice of models to response DTOs
func ToUserResponses(users []model.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}
