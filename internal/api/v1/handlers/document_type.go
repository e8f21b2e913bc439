package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"notary-api/internal/api/middleware"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/api/v1/services"
)

// DocumentTypeHandler handles document type endpoints
type DocumentTypeHandler struct {
	service services.DocumentTypeService
}

// NewDocumentTypeHandler creates a new document type handler
func NewDocumentTypeHandler(service services.DocumentTypeService) *DocumentTypeHandler {
	return &DocumentTypeHandler{service: service}
}

// List handles GET /api/v1/document-types
//
// @Summary List document types
// @Tags document-types
// @Produce json
// @Success 200 {array} dto.DocumentTypeResponse "List of document types"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /document-types [get]
func (h *DocumentTypeHandler) List(c *gin.Context) {
	response, err := h.service.ListDocumentTypes(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/document-types/:id
//
// @Summary Get document type by ID
// @Tags document-types
// @Produce json
// @Param id path string true "Document type ID" format(uuid)
// @Success 200 {object} dto.DocumentTypeResponse "Document type details"
// @Failure 404 {object} errors.APIError "Document type not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /document-types/{id} [get]
func (h *DocumentTypeHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.GetDocumentType(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/v1/document-types
//
// @Summary Create a document type
// @Tags document-types
// @Accept json
// @Produce json
// @Param documentType body dto.CreateDocumentTypeRequest true "Document type data"
// @Success 201 {object} dto.DocumentTypeResponse "Document type created"
// @Failure 409 {object} errors.APIError "Type name already exists"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /document-types [post]
func (h *DocumentTypeHandler) Create(c *gin.Context) {
	var req dto.CreateDocumentTypeRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.CreateDocumentType(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// Update handles PATCH /api/v1/document-types/:id
//
// @Summary Update a document type
// @Tags document-types
// @Accept json
// @Produce json
// @Param id path string true "Document type ID" format(uuid)
// @Param documentType body dto.UpdateDocumentTypeRequest true "Fields to update"
// @Success 200 {object} dto.DocumentTypeResponse "Updated document type"
// @Failure 404 {object} errors.APIError "Document type not found"
// @Failure 409 {object} errors.APIError "Type name already exists"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /document-types/{id} [patch]
func (h *DocumentTypeHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	var req dto.UpdateDocumentTypeRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.UpdateDocumentType(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/v1/document-types/:id
//
// @Summary Delete a document type
// @Tags document-types
// @Produce json
// @Param id path string true "Document type ID" format(uuid)
// @Success 200 {object} dto.MessageResponse "Document type deleted"
// @Failure 404 {object} errors.APIError "Document type not found"
// @Failure 409 {object} errors.APIError "Document type is in use"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /document-types/{id} [delete]
func (h *DocumentTypeHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := h.service.DeleteDocumentType(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Document type deleted"})
}
