package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"notary-api/internal/api/errors"
	"notary-api/internal/api/middleware"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/api/v1/services"
)

// DocumentHandler handles document endpoints
type DocumentHandler struct {
	service services.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(service services.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// List handles GET /api/v1/documents
//
// @Summary List documents
// @Tags documents
// @Produce json
// @Success 200 {array} dto.DocumentResponse "List of documents"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	response, err := h.service.ListDocuments(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/documents/:id
//
// @Summary Get document by ID
// @Tags documents
// @Produce json
// @Param id path string true "Document ID" format(uuid)
// @Success 200 {object} dto.DocumentResponse "Document details"
// @Failure 404 {object} errors.APIError "Document not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /documents/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.GetDocument(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/v1/documents
//
// @Summary Create a document
// @Description Creates a document. When template_id is given, text content is assembled from the template's ordered sections with dynamic_data substituted.
// @Tags documents
// @Accept json
// @Produce json
// @Param document body dto.CreateDocumentRequest true "Document data"
// @Success 201 {object} dto.DocumentResponse "Document created"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	var req dto.CreateDocumentRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.HandleError(c, errors.NewUnauthorizedError("Missing authenticated user"))
		return
	}

	response, err := h.service.CreateDocument(c.Request.Context(), &req, userID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// Update handles PATCH /api/v1/documents/:id
//
// @Summary Update a document
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID" format(uuid)
// @Param document body dto.UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} dto.DocumentResponse "Updated document"
// @Failure 404 {object} errors.APIError "Document not found"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /documents/{id} [patch]
func (h *DocumentHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	var req dto.UpdateDocumentRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.UpdateDocument(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/v1/documents/:id
//
// @Summary Delete a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID" format(uuid)
// @Success 200 {object} dto.MessageResponse "Document deleted"
// @Failure 404 {object} errors.APIError "Document not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := h.service.DeleteDocument(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Document deleted"})
}
