package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"notary-api/internal/api/errors"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/app/model"
)

func newAgentService(dao *mockAgentDAO, cache *mockAgentCache, prober *mockProber) AgentService {
	return NewAgentService(dao, cache, prober, zap.NewNop())
}

func boolPtr(b bool) *bool { return &b }

func TestCreateAgent_FirstDefault(t *testing.T) {
	dao := &mockAgentDAO{}
	cache := &mockAgentCache{}
	svc := newAgentService(dao, cache, &mockProber{})

	resp, err := svc.CreateAgent(context.Background(), &dto.CreateAgentRequest{
		AgentName: "whisper-default",
		Provider:  model.ProviderOpenAI,
		ModelName: model.WhisperModel,
		IsDefault: true,
	})
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	assert.True(t, resp.IsActive)
	require.Len(t, dao.setDefaultIDs, 1)
	assert.Equal(t, dao.createdAgents[0].AgentID, dao.setDefaultIDs[0],
		"the new agent becomes the default through the atomic swap")
	assert.Equal(t, 1, cache.invalidateCalls)
}

func TestCreateAgent_DefaultSwapsExistingDefault(t *testing.T) {
	oldDefault := uuid.New()
	dao := &mockAgentDAO{agents: []model.AgentConfiguration{
		{AgentID: oldDefault, AgentName: "old", Provider: model.ProviderOpenAI,
			ModelName: model.WhisperModel, IsActive: true, IsDefault: true},
	}}
	svc := newAgentService(dao, &mockAgentCache{}, &mockProber{})

	resp, err := svc.CreateAgent(context.Background(), &dto.CreateAgentRequest{
		AgentName: "new-default",
		Provider:  model.ProviderOpenAI,
		ModelName: model.WhisperModel,
		IsDefault: true,
	})
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	for _, a := range dao.agents {
		if a.AgentID == oldDefault {
			assert.False(t, a.IsDefault, "the previous default is demoted by the swap")
		}
	}
}

func TestCreateAgent_DefaultMustBeActive(t *testing.T) {
	svc := newAgentService(&mockAgentDAO{}, &mockAgentCache{}, &mockProber{})

	_, err := svc.CreateAgent(context.Background(), &dto.CreateAgentRequest{
		AgentName: "inactive-default",
		Provider:  model.ProviderOpenAI,
		ModelName: model.WhisperModel,
		IsActive:  boolPtr(false),
		IsDefault: true,
	})
	require.Error(t, err)

	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.KindValidation, apiErr.Kind)
}

func TestCreateAgent_DuplicateName(t *testing.T) {
	dao := &mockAgentDAO{agents: []model.AgentConfiguration{
		{AgentID: uuid.New(), AgentName: "existing", Provider: model.ProviderOpenAI, IsActive: true},
	}}
	svc := newAgentService(dao, &mockAgentCache{}, &mockProber{})

	_, err := svc.CreateAgent(context.Background(), &dto.CreateAgentRequest{
		AgentName: "existing",
		Provider:  model.ProviderOpenAI,
		ModelName: model.WhisperModel,
	})
	require.Error(t, err)

	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.KindConflict, apiErr.Kind)
}

func TestUpdateAgent_PromotesSuccessorOnDemote(t *testing.T) {
	defaultID := uuid.New()
	successorID := uuid.New()
	dao := &mockAgentDAO{agents: []model.AgentConfiguration{
		{AgentID: defaultID, AgentName: "current", Provider: model.ProviderOpenAI, IsActive: true, IsDefault: true},
		{AgentID: successorID, AgentName: "successor", Provider: model.ProviderOpenAI, IsActive: true},
	}}
	cache := &mockAgentCache{}
	svc := newAgentService(dao, cache, &mockProber{})

	_, err := svc.UpdateAgent(context.Background(), defaultID, &dto.UpdateAgentRequest{
		IsDefault: boolPtr(false),
	})
	require.NoError(t, err)

	require.Len(t, dao.setDefaultIDs, 1)
	assert.Equal(t, successorID, dao.setDefaultIDs[0])
	assert.Equal(t, 1, cache.invalidateCalls)
}

func TestUpdateAgent_PromoteUsesAtomicSwap(t *testing.T) {
	defaultID := uuid.New()
	promotedID := uuid.New()
	dao := &mockAgentDAO{agents: []model.AgentConfiguration{
		{AgentID: defaultID, AgentName: "current", Provider: model.ProviderOpenAI,
			ModelName: model.WhisperModel, IsActive: true, IsDefault: true},
		{AgentID: promotedID, AgentName: "next", Provider: model.ProviderOpenAI,
			ModelName: model.WhisperModel, IsActive: true},
	}}
	svc := newAgentService(dao, &mockAgentCache{}, &mockProber{})

	resp, err := svc.UpdateAgent(context.Background(), promotedID, &dto.UpdateAgentRequest{
		IsDefault: boolPtr(true),
	})
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	require.Len(t, dao.setDefaultIDs, 1)
	assert.Equal(t, promotedID, dao.setDefaultIDs[0])
	require.Len(t, dao.updatedUpdates, 1)
	assert.Nil(t, dao.updatedUpdates[0].IsDefault,
		"the default flag moves through SetDefault, not the field update")
}

func TestUpdateAgent_DemoteWithoutSuccessorConflicts(t *testing.T) {
	defaultID := uuid.New()
	dao := &mockAgentDAO{agents: []model.AgentConfiguration{
		{AgentID: defaultID, AgentName: "only", Provider: model.ProviderOpenAI, IsActive: true, IsDefault: true},
	}}
	svc := newAgentService(dao, &mockAgentCache{}, &mockProber{})

	_, err := svc.UpdateAgent(context.Background(), defaultID, &dto.UpdateAgentRequest{
		IsDefault: boolPtr(false),
	})
	require.Error(t, err)

	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.KindConflict, apiErr.Kind)
	assert.Empty(t, dao.setDefaultIDs)
}

func TestUpdateAgent_DeactivateDefaultRequiresSuccessor(t *testing.T) {
	defaultID := uuid.New()
	dao := &mockAgentDAO{agents: []model.AgentConfiguration{
		{AgentID: defaultID, AgentName: "only", Provider: model.ProviderOpenAI, IsActive: true, IsDefault: true},
	}}
	svc := newAgentService(dao, &mockAgentCache{}, &mockProber{})

	// Deactivating while staying default is invalid outright.
	_, err := svc.UpdateAgent(context.Background(), defaultID, &dto.UpdateAgentRequest{
		IsActive: boolPtr(false),
	})
	require.Error(t, err)

	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.KindValidation, apiErr.Kind)
}

func TestDeleteAgent_PromotesSuccessor(t *testing.T) {
	defaultID := uuid.New()
	successorID := uuid.New()
	dao := &mockAgentDAO{agents: []model.AgentConfiguration{
		{AgentID: defaultID, AgentName: "current", Provider: model.ProviderOpenAI, IsActive: true, IsDefault: true},
		{AgentID: successorID, AgentName: "successor", Provider: model.ProviderOpenAI, IsActive: true},
	}}
	cache := &mockAgentCache{}
	svc := newAgentService(dao, cache, &mockProber{})

	err := svc.DeleteAgent(context.Background(), defaultID)
	require.NoError(t, err)

	require.Len(t, dao.setDefaultIDs, 1)
	assert.Equal(t, successorID, dao.setDefaultIDs[0])
	assert.Equal(t, 1, cache.invalidateCalls)
}

func TestDeleteAgent_LastAgentLeavesNoDefault(t *testing.T) {
	onlyID := uuid.New()
	dao := &mockAgentDAO{agents: []model.AgentConfiguration{
		{AgentID: onlyID, AgentName: "only", Provider: model.ProviderOpenAI, IsActive: true, IsDefault: true},
	}}
	svc := newAgentService(dao, &mockAgentCache{}, &mockProber{})

	err := svc.DeleteAgent(context.Background(), onlyID)
	require.NoError(t, err)
	assert.Empty(t, dao.setDefaultIDs)
	assert.Empty(t, dao.agents)
}

func TestDeleteAgent_NotFound(t *testing.T) {
	svc := newAgentService(&mockAgentDAO{}, &mockAgentCache{}, &mockProber{})

	err := svc.DeleteAgent(context.Background(), uuid.New())
	require.Error(t, err)

	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.KindNotFound, apiErr.Kind)
}

func TestTestAgent_ReportsProbeFailure(t *testing.T) {
	id := uuid.New()
	dao := &mockAgentDAO{agents: []model.AgentConfiguration{
		{AgentID: id, AgentName: "broken", Provider: model.ProviderOpenAI, IsActive: true},
	}}
	prober := &mockProber{failFor: map[string]error{model.ProviderOpenAI: errBoom}}
	svc := newAgentService(dao, &mockAgentCache{}, prober)

	resp, err := svc.TestAgent(context.Background(), id)
	require.NoError(t, err)

	assert.False(t, resp.Reachable)
	assert.Equal(t, "boom", resp.Error)
	assert.Equal(t, []string{model.ProviderOpenAI}, prober.probed)
}
