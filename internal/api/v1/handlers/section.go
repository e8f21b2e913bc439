package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"notary-api/internal/api/middleware"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/api/v1/services"
)

// SectionHandler handles template section endpoints
type SectionHandler struct {
	service services.SectionService
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(service services.SectionService) *SectionHandler {
	return &SectionHandler{service: service}
}

// List handles GET /api/v1/template-sections
//
// @Summary List template sections
// @Tags template-sections
// @Produce json
// @Success 200 {array} dto.SectionResponse "List of sections"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /template-sections [get]
func (h *SectionHandler) List(c *gin.Context) {
	response, err := h.service.ListSections(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/template-sections/:id
//
// @Summary Get template section by ID
// @Tags template-sections
// @Produce json
// @Param id path string true "Section ID" format(uuid)
// @Success 200 {object} dto.SectionResponse "Section details"
// @Failure 404 {object} errors.APIError "Section not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /template-sections/{id} [get]
func (h *SectionHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.GetSection(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/v1/template-sections
//
// @Summary Create a template section
// @Tags template-sections
// @Accept json
// @Produce json
// @Param section body dto.CreateSectionRequest true "Section data"
// @Success 201 {object} dto.SectionResponse "Section created"
// @Failure 409 {object} errors.APIError "Section name already exists"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /template-sections [post]
func (h *SectionHandler) Create(c *gin.Context) {
	var req dto.CreateSectionRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.CreateSection(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// Update handles PATCH /api/v1/template-sections/:id
//
// @Summary Update a template section
// @Tags template-sections
// @Accept json
// @Produce json
// @Param id path string true "Section ID" format(uuid)
// @Param section body dto.UpdateSectionRequest true "Fields to update"
// @Success 200 {object} dto.SectionResponse "Updated section"
// @Failure 404 {object} errors.APIError "Section not found"
// @Failure 409 {object} errors.APIError "Section name already exists"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /template-sections/{id} [patch]
func (h *SectionHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	var req dto.UpdateSectionRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.UpdateSection(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/v1/template-sections/:id
//
// @Summary Delete a template section
// @Tags template-sections
// @Produce json
// @Param id path string true "Section ID" format(uuid)
// @Success 200 {object} dto.MessageResponse "Section deleted"
// @Failure 404 {object} errors.APIError "Section not found"
// @Failure 409 {object} errors.APIError "Section is used by templates"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /template-sections/{id} [delete]
func (h *SectionHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := h.service.DeleteSection(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Section deleted"})
}
