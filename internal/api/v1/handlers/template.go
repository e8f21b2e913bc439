package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"notary-api/internal/api/errors"
	"notary-api/internal/api/middleware"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/api/v1/services"
)

// TemplateHandler handles template endpoints
type TemplateHandler struct {
	service services.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(service services.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// List handles GET /api/v1/templates
//
// @Summary List templates
// @Tags templates
// @Produce json
// @Success 200 {array} dto.TemplateResponse "List of templates"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	response, err := h.service.ListTemplates(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/templates/:id
//
// @Summary Get template by ID
// @Tags templates
// @Produce json
// @Param id path string true "Template ID" format(uuid)
// @Success 200 {object} dto.TemplateResponse "Template details"
// @Failure 404 {object} errors.APIError "Template not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /templates/{id} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.GetTemplate(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/v1/templates
//
// @Summary Create a template
// @Tags templates
// @Accept json
// @Produce json
// @Param template body dto.CreateTemplateRequest true "Template data"
// @Success 201 {object} dto.TemplateResponse "Template created"
// @Failure 409 {object} errors.APIError "Template name already exists"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.HandleError(c, errors.NewUnauthorizedError("Missing authenticated user"))
		return
	}

	response, err := h.service.CreateTemplate(c.Request.Context(), &req, userID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// Update handles PATCH /api/v1/templates/:id
//
// @Summary Update a template
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID" format(uuid)
// @Param template body dto.UpdateTemplateRequest true "Fields to update"
// @Success 200 {object} dto.TemplateResponse "Updated template"
// @Failure 404 {object} errors.APIError "Template not found"
// @Failure 409 {object} errors.APIError "Template name already exists"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /templates/{id} [patch]
func (h *TemplateHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	var req dto.UpdateTemplateRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.UpdateTemplate(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/v1/templates/:id
//
// @Summary Delete a template
// @Tags templates
// @Produce json
// @Param id path string true "Template ID" format(uuid)
// @Success 200 {object} dto.MessageResponse "Template deleted"
// @Failure 404 {object} errors.APIError "Template not found"
// @Failure 409 {object} errors.APIError "Template is referenced by documents"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := h.service.DeleteTemplate(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Template deleted"})
}
