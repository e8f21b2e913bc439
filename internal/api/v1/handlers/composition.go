package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"notary-api/internal/api/errors"
	"notary-api/internal/api/middleware"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/api/v1/services"
)

// CompositionHandler handles template section composition endpoints.
// Compositions are addressed by their composite key, template_id plus
// section_id.
type CompositionHandler struct {
	service services.CompositionService
}

// NewCompositionHandler creates a new composition handler
func NewCompositionHandler(service services.CompositionService) *CompositionHandler {
	return &CompositionHandler{service: service}
}

// List handles GET /api/v1/template-section-compositions
//
// @Summary List compositions
// @Tags compositions
// @Produce json
// @Param template_id query string false "Filter by template" format(uuid)
// @Success 200 {array} dto.CompositionResponse "List of compositions, ordered by order_index when filtered by template"
// @Failure 404 {object} errors.APIError "Template not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /template-section-compositions [get]
func (h *CompositionHandler) List(c *gin.Context) {
	if raw := c.Query("template_id"); raw != "" {
		templateID, err := uuid.Parse(raw)
		if err != nil {
			middleware.HandleError(c, errors.NewBadRequestError("Invalid template_id"))
			return
		}
		response, err := h.service.ListCompositionsByTemplate(c.Request.Context(), templateID)
		if err != nil {
			middleware.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, response)
		return
	}

	response, err := h.service.ListCompositions(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/template-section-compositions/:template_id/:section_id
//
// @Summary Get composition by composite key
// @Tags compositions
// @Produce json
// @Param template_id path string true "Template ID" format(uuid)
// @Param section_id path string true "Section ID" format(uuid)
// @Success 200 {object} dto.CompositionResponse "Composition details"
// @Failure 404 {object} errors.APIError "Composition not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /template-section-compositions/{template_id}/{section_id} [get]
func (h *CompositionHandler) Get(c *gin.Context) {
	templateID, err := parseUUIDParam(c, "template_id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	sectionID, err := parseUUIDParam(c, "section_id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.GetComposition(c.Request.Context(), templateID, sectionID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/v1/template-section-compositions
//
// @Summary Add a section to a template
// @Description Places a section at a position within a template. order_index must be unique within the template.
// @Tags compositions
// @Accept json
// @Produce json
// @Param composition body dto.CreateCompositionRequest true "Composition data"
// @Success 201 {object} dto.CompositionResponse "Composition created"
// @Failure 409 {object} errors.APIError "Composition or order index conflict"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /template-section-compositions [post]
func (h *CompositionHandler) Create(c *gin.Context) {
	var req dto.CreateCompositionRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.CreateComposition(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// Update handles PATCH /api/v1/template-section-compositions/:template_id/:section_id
//
// @Summary Update a composition
// @Tags compositions
// @Accept json
// @Produce json
// @Param template_id path string true "Template ID" format(uuid)
// @Param section_id path string true "Section ID" format(uuid)
// @Param composition body dto.UpdateCompositionRequest true "Fields to update"
// @Success 200 {object} dto.CompositionResponse "Updated composition"
// @Failure 404 {object} errors.APIError "Composition not found"
// @Failure 409 {object} errors.APIError "Order index conflict"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /template-section-compositions/{template_id}/{section_id} [patch]
func (h *CompositionHandler) Update(c *gin.Context) {
	templateID, err := parseUUIDParam(c, "template_id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	sectionID, err := parseUUIDParam(c, "section_id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	var req dto.UpdateCompositionRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.UpdateComposition(c.Request.Context(), templateID, sectionID, &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/v1/template-section-compositions/:template_id/:section_id
//
// @Summary Remove a section from a template
// @Tags compositions
// @Produce json
// @Param template_id path string true "Template ID" format(uuid)
// @Param section_id path string true "Section ID" format(uuid)
// @Success 200 {object} dto.MessageResponse "Composition deleted"
// @Failure 404 {object} errors.APIError "Composition not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /template-section-compositions/{template_id}/{section_id} [delete]
func (h *CompositionHandler) Delete(c *gin.Context) {
	templateID, err := parseUUIDParam(c, "template_id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	sectionID, err := parseUUIDParam(c, "section_id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := h.service.DeleteComposition(c.Request.Context(), templateID, sectionID); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Composition deleted"})
}
