package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"notary-api/internal/api/errors"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/app/agent"
	"notary-api/internal/app/cache"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// AgentServiceImpl implements AgentService and enforces the default-agent
// invariant: at most one default, and the default must be active.
type AgentServiceImpl struct {
	agents repository.AgentDAO
	cache  cache.AgentCache
	prober agent.Prober
	logger *zap.Logger
}

// NewAgentService creates a new agent service
func NewAgentService(agents repository.AgentDAO, agentCache cache.AgentCache, prober agent.Prober, logger *zap.Logger) AgentService {
	return &AgentServiceImpl{
		agents: agents,
		cache:  agentCache,
		prober: prober,
		logger: logger,
	}
}

func (s *AgentServiceImpl) ListAgents(ctx context.Context) ([]dto.AgentResponse, error) {
	agents, err := s.agents.GetAll(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list agents")
	}
	return dto.ToAgentResponses(agents), nil
}

func (s *AgentServiceImpl) GetAgent(ctx context.Context, id uuid.UUID) (*dto.AgentResponse, error) {
	a, err := s.agents.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to get agent")
	}
	if a == nil {
		return nil, errors.NewNotFoundError("Agent configuration")
	}
	resp := dto.ToAgentResponse(a)
	return &resp, nil
}

func (s *AgentServiceImpl) CreateAgent(ctx context.Context, req *dto.CreateAgentRequest) (*dto.AgentResponse, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	if req.IsDefault && !isActive {
		return nil, errors.NewValidationError("Invalid agent configuration request", map[string]string{
			"is_default": "the default agent must be active",
		})
	}

	existing, err := s.agents.GetByName(ctx, req.AgentName)
	if err != nil {
		return nil, errors.NewInternalError("Failed to check agent name")
	}
	if existing != nil {
		return nil, errors.NewConflictError("Agent name already exists")
	}

	// The row is inserted non-default; the atomic swap below moves the
	// default flag, so a failed insert leaves the previous default intact.
	a := &model.AgentConfiguration{
		AgentName:        req.AgentName,
		Provider:         req.Provider,
		ModelName:        req.ModelName,
		APIBaseURL:       req.APIBaseURL,
		APIKeySecretName: req.APIKeySecretName,
		ConfigJSON:       req.ConfigJSON,
		IsActive:         isActive,
	}
	if a.ConfigJSON == nil {
		a.ConfigJSON = map[string]any{}
	}
	if err := s.agents.Create(ctx, a); err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("Agent name already exists")
		}
		return nil, errors.NewInternalError("Failed to create agent")
	}

	if req.IsDefault {
		if err := s.agents.SetDefault(ctx, a.AgentID); err != nil {
			return nil, errors.NewInternalError("Failed to set default agent")
		}
		a.IsDefault = true
	}

	s.cache.InvalidateDefaultAgent(ctx)
	s.logger.Info("agent created",
		zap.String("agent_id", a.AgentID.String()),
		zap.String("provider", a.Provider),
		zap.Bool("is_default", a.IsDefault))

	resp := dto.ToAgentResponse(a)
	return &resp, nil
}

func (s *AgentServiceImpl) UpdateAgent(ctx context.Context, id uuid.UUID, req *dto.UpdateAgentRequest) (*dto.AgentResponse, error) {
	current, err := s.agents.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to get agent")
	}
	if current == nil {
		return nil, errors.NewNotFoundError("Agent configuration")
	}

	if req.AgentName != nil && *req.AgentName != current.AgentName {
		existing, err := s.agents.GetByName(ctx, *req.AgentName)
		if err != nil {
			return nil, errors.NewInternalError("Failed to check agent name")
		}
		if existing != nil {
			return nil, errors.NewConflictError("Agent name already exists")
		}
	}

	wantDefault := current.IsDefault
	if req.IsDefault != nil {
		wantDefault = *req.IsDefault
	}
	wantActive := current.IsActive
	if req.IsActive != nil {
		wantActive = *req.IsActive
	}
	if wantDefault && !wantActive {
		return nil, errors.NewValidationError("Invalid agent configuration request", map[string]string{
			"is_default": "the default agent must be active",
		})
	}

	// Demoting or deactivating the current default needs a successor so
	// transcription never loses its fallback agent.
	if current.IsDefault && !wantDefault {
		if err := s.promoteSuccessor(ctx, id); err != nil {
			return nil, err
		}
	}

	// A promotion goes through SetDefault after the field update so the
	// clear-and-set swap stays atomic.
	promote := wantDefault && !current.IsDefault
	isDefault := req.IsDefault
	if promote {
		isDefault = nil
	}

	a, err := s.agents.Update(ctx, id, repository.AgentUpdate{
		AgentName:        req.AgentName,
		Provider:         req.Provider,
		ModelName:        req.ModelName,
		APIBaseURL:       req.APIBaseURL,
		APIKeySecretName: req.APIKeySecretName,
		ConfigJSON:       req.ConfigJSON,
		IsActive:         req.IsActive,
		IsDefault:        isDefault,
	})
	if err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("Agent name already exists")
		}
		return nil, errors.NewInternalError("Failed to update agent")
	}
	if a == nil {
		return nil, errors.NewNotFoundError("Agent configuration")
	}

	if promote {
		if err := s.agents.SetDefault(ctx, id); err != nil {
			return nil, errors.NewInternalError("Failed to set default agent")
		}
		a.IsDefault = true
	}

	s.cache.InvalidateDefaultAgent(ctx)

	resp := dto.ToAgentResponse(a)
	return &resp, nil
}

// promoteSuccessor makes the oldest other active agent the default.
func (s *AgentServiceImpl) promoteSuccessor(ctx context.Context, demoted uuid.UUID) error {
	candidates, err := s.agents.GetActiveExcept(ctx, demoted)
	if err != nil {
		return errors.NewInternalError("Failed to find successor agent")
	}
	if len(candidates) == 0 {
		return errors.NewConflictError("Cannot demote the only active agent; configure another default first")
	}
	if err := s.agents.SetDefault(ctx, candidates[0].AgentID); err != nil {
		return errors.NewInternalError("Failed to promote successor agent")
	}
	s.logger.Info("promoted successor default agent",
		zap.String("agent_id", candidates[0].AgentID.String()))
	return nil
}

func (s *AgentServiceImpl) DeleteAgent(ctx context.Context, id uuid.UUID) error {
	current, err := s.agents.GetByID(ctx, id)
	if err != nil {
		return errors.NewInternalError("Failed to get agent")
	}
	if current == nil {
		return errors.NewNotFoundError("Agent configuration")
	}

	// Transcriptions referencing the agent keep their rows; the FK nulls
	// agent_id on delete.
	deleted, err := s.agents.Delete(ctx, id)
	if err != nil {
		return errors.NewInternalError("Failed to delete agent")
	}
	if !deleted {
		return errors.NewNotFoundError("Agent configuration")
	}

	// When the default is removed, promote a successor if any remain.
	if current.IsDefault {
		candidates, err := s.agents.GetActiveExcept(ctx, id)
		if err == nil && len(candidates) > 0 {
			if err := s.agents.SetDefault(ctx, candidates[0].AgentID); err != nil {
				s.logger.Error("failed to promote successor after delete", zap.Error(err))
			}
		}
	}

	s.cache.InvalidateDefaultAgent(ctx)
	return nil
}

func (s *AgentServiceImpl) TestAgent(ctx context.Context, id uuid.UUID) (*dto.AgentTestResponse, error) {
	a, err := s.agents.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to get agent")
	}
	if a == nil {
		return nil, errors.NewNotFoundError("Agent configuration")
	}

	resp := &dto.AgentTestResponse{
		AgentID:   a.AgentID.String(),
		AgentName: a.AgentName,
		Provider:  a.Provider,
		Reachable: true,
	}
	if err := s.prober.Probe(ctx, a); err != nil {
		resp.Reachable = false
		resp.Error = err.Error()
	}
	return resp, nil
}
