package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"notary-api/internal/api/middleware"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/api/v1/services"
)

// RoleHandler handles role-related API endpoints
type RoleHandler struct {
	service services.RoleService
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(service services.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// List handles GET /api/v1/roles
//
// @Summary List roles
// @Description Retrieves all access roles
// @Tags roles
// @Produce json
// @Success 200 {array} dto.RoleResponse "List of roles"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /roles [get]
func (h *RoleHandler) List(c *gin.Context) {
	response, err := h.service.ListRoles(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/roles/:id
//
// @Summary Get role by ID
// @Tags roles
// @Produce json
// @Param id path string true "Role ID" format(uuid)
// @Success 200 {object} dto.RoleResponse "Role details"
// @Failure 400 {object} errors.APIError "Bad request - invalid ID"
// @Failure 404 {object} errors.APIError "Role not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /roles/{id} [get]
func (h *RoleHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.GetRole(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/v1/roles
//
// @Summary Create a role
// @Tags roles
// @Accept json
// @Produce json
// @Param role body dto.CreateRoleRequest true "Role creation data"
// @Success 201 {object} dto.RoleResponse "Role created"
// @Failure 409 {object} errors.APIError "Role name already exists"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /roles [post]
func (h *RoleHandler) Create(c *gin.Context) {
	var req dto.CreateRoleRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.CreateRole(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// Update handles PATCH /api/v1/roles/:id
//
// @Summary Update a role
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID" format(uuid)
// @Param role body dto.UpdateRoleRequest true "Fields to update"
// @Success 200 {object} dto.RoleResponse "Updated role"
// @Failure 404 {object} errors.APIError "Role not found"
// @Failure 409 {object} errors.APIError "Role name already exists"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /roles/{id} [patch]
func (h *RoleHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	var req dto.UpdateRoleRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.UpdateRole(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/v1/roles/:id
//
// @Summary Delete a role
// @Tags roles
// @Produce json
// @Param id path string true "Role ID" format(uuid)
// @Success 200 {object} dto.MessageResponse "Role deleted"
// @Failure 404 {object} errors.APIError "Role not found"
// @Failure 409 {object} errors.APIError "Role is in use"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /roles/{id} [delete]
func (h *RoleHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := h.service.DeleteRole(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Role deleted"})
}
