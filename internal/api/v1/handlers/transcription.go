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

// TranscriptionHandler handles transcription-related API endpoints
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{service: service}
}

// Create handles POST /api/v1/transcriptions
// Accepts a multipart upload and transcribes it synchronously.
//
// @Summary Transcribe an audio file
// @Description Uploads an audio file, segments it and transcribes it with the selected or default agent. Runs synchronously; long files take up to the server write timeout.
// @Tags transcriptions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file"
// @Param agent_id formData string false "Agent configuration to use" format(uuid)
// @Success 201 {object} dto.TranscriptionResponse "Completed transcription"
// @Failure 400 {object} errors.APIError "Bad request - missing file"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions [post]
func (h *TranscriptionHandler) Create(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Missing file upload"))
		return
	}
	defer file.Close()

	var form dto.TranscribeForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Invalid agent_id"))
		return
	}
	var agentID *uuid.UUID
	if form.AgentID != "" {
		id, err := uuid.Parse(form.AgentID)
		if err != nil {
			middleware.HandleError(c, errors.NewBadRequestError("Invalid agent_id"))
			return
		}
		agentID = &id
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.HandleError(c, errors.NewUnauthorizedError("Missing authenticated user"))
		return
	}

	response, err := h.service.Transcribe(c.Request.Context(), file, header, userID, agentID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// List handles GET /api/v1/transcriptions
//
// @Summary List transcriptions
// @Tags transcriptions
// @Produce json
// @Success 200 {array} dto.TranscriptionResponse "List of transcriptions"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions [get]
func (h *TranscriptionHandler) List(c *gin.Context) {
	response, err := h.service.ListTranscriptions(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/transcriptions/:id
//
// @Summary Get transcription by ID
// @Tags transcriptions
// @Produce json
// @Param id path string true "Transcription ID" format(uuid)
// @Success 200 {object} dto.TranscriptionResponse "Transcription details"
// @Failure 400 {object} errors.APIError "Bad request - invalid ID"
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions/{id} [get]
func (h *TranscriptionHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.GetTranscription(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PATCH /api/v1/transcriptions/:id
//
// @Summary Update a transcription
// @Description Partially updates a transcription. A body carrying only text_content is treated as a manual correction of the transcribed text.
// @Tags transcriptions
// @Accept json
// @Produce json
// @Param id path string true "Transcription ID" format(uuid)
// @Param transcription body dto.UpdateTranscriptionRequest true "Fields to update"
// @Success 200 {object} dto.TranscriptionResponse "Updated transcription"
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions/{id} [patch]
func (h *TranscriptionHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	var req dto.UpdateTranscriptionRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.UpdateTranscription(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/v1/transcriptions/:id
//
// @Summary Delete a transcription
// @Tags transcriptions
// @Produce json
// @Param id path string true "Transcription ID" format(uuid)
// @Success 200 {object} dto.MessageResponse "Transcription deleted"
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions/{id} [delete]
func (h *TranscriptionHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := h.service.DeleteTranscription(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transcription deleted"})
}
