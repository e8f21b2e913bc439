package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"notary-api/internal/api/middleware"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/api/v1/services"
)

// AgentHandler handles AI agent configuration endpoints
type AgentHandler struct {
	service services.AgentService
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(service services.AgentService) *AgentHandler {
	return &AgentHandler{service: service}
}

// List handles GET /api/v1/agents
//
// @Summary List agent configurations
// @Tags agents
// @Produce json
// @Success 200 {array} dto.AgentResponse "List of agent configurations"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /agents [get]
func (h *AgentHandler) List(c *gin.Context) {
	response, err := h.service.ListAgents(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/agents/:id
//
// @Summary Get agent configuration by ID
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID" format(uuid)
// @Success 200 {object} dto.AgentResponse "Agent configuration"
// @Failure 400 {object} errors.APIError "Bad request - invalid ID"
// @Failure 404 {object} errors.APIError "Agent not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /agents/{id} [get]
func (h *AgentHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.GetAgent(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/v1/agents
//
// @Summary Create an agent configuration
// @Description Creates an AI agent configuration. Setting is_default moves the default from the previous holder.
// @Tags agents
// @Accept json
// @Produce json
// @Param agent body dto.CreateAgentRequest true "Agent configuration data"
// @Success 201 {object} dto.AgentResponse "Agent created"
// @Failure 409 {object} errors.APIError "Agent name already exists"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /agents [post]
func (h *AgentHandler) Create(c *gin.Context) {
	var req dto.CreateAgentRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.CreateAgent(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// Update handles PATCH /api/v1/agents/:id
//
// @Summary Update an agent configuration
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID" format(uuid)
// @Param agent body dto.UpdateAgentRequest true "Fields to update"
// @Success 200 {object} dto.AgentResponse "Updated agent"
// @Failure 404 {object} errors.APIError "Agent not found"
// @Failure 409 {object} errors.APIError "Conflict with default agent rules"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /agents/{id} [patch]
func (h *AgentHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	var req dto.UpdateAgentRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.UpdateAgent(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/v1/agents/:id
//
// @Summary Delete an agent configuration
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID" format(uuid)
// @Success 200 {object} dto.MessageResponse "Agent deleted"
// @Failure 404 {object} errors.APIError "Agent not found"
// @Failure 409 {object} errors.APIError "Agent is referenced by transcriptions"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /agents/{id} [delete]
func (h *AgentHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := h.service.DeleteAgent(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Agent deleted"})
}

// Test handles POST /api/v1/agents/:id/test
//
// @Summary Probe agent connectivity
// @Description Makes one cheap provider API call with the agent's configuration and reports reachability
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID" format(uuid)
// @Success 200 {object} dto.AgentTestResponse "Probe result"
// @Failure 404 {object} errors.APIError "Agent not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /agents/{id}/test [post]
func (h *AgentHandler) Test(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.TestAgent(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
