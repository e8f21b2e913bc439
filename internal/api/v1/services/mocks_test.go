package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// mockAgentDAO is an in-memory AgentDAO recording the calls the service makes.
type mockAgentDAO struct {
	agents []model.AgentConfiguration

	err            error
	setDefaultIDs  []uuid.UUID
	deletedIDs     []uuid.UUID
	createdAgents  []*model.AgentConfiguration
	updatedUpdates []repository.AgentUpdate
}

func (m *mockAgentDAO) GetAll(ctx context.Context) ([]model.AgentConfiguration, error) {
	return m.agents, m.err
}

func (m *mockAgentDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.AgentConfiguration, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.agents {
		if m.agents[i].AgentID == id {
			a := m.agents[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (m *mockAgentDAO) GetByName(ctx context.Context, name string) (*model.AgentConfiguration, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.agents {
		if m.agents[i].AgentName == name {
			a := m.agents[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (m *mockAgentDAO) GetDefault(ctx context.Context) (*model.AgentConfiguration, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.agents {
		if m.agents[i].IsDefault {
			a := m.agents[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (m *mockAgentDAO) GetActiveExcept(ctx context.Context, id uuid.UUID) ([]model.AgentConfiguration, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.AgentConfiguration
	for _, a := range m.agents {
		if a.IsActive && a.AgentID != id {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAgentDAO) Create(ctx context.Context, agent *model.AgentConfiguration) error {
	if m.err != nil {
		return m.err
	}
	agent.AgentID = uuid.New()
	m.createdAgents = append(m.createdAgents, agent)
	m.agents = append(m.agents, *agent)
	return nil
}

func (m *mockAgentDAO) Update(ctx context.Context, id uuid.UUID, update repository.AgentUpdate) (*model.AgentConfiguration, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.updatedUpdates = append(m.updatedUpdates, update)
	for i := range m.agents {
		if m.agents[i].AgentID == id {
			a := &m.agents[i]
			if update.AgentName != nil {
				a.AgentName = *update.AgentName
			}
			if update.IsActive != nil {
				a.IsActive = *update.IsActive
			}
			if update.IsDefault != nil {
				a.IsDefault = *update.IsDefault
			}
			out := *a
			return &out, nil
		}
	}
	return nil, nil
}

func (m *mockAgentDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.agents {
		if m.agents[i].AgentID == id {
			m.agents = append(m.agents[:i], m.agents[i+1:]...)
			m.deletedIDs = append(m.deletedIDs, id)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAgentDAO) SetDefault(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	m.setDefaultIDs = append(m.setDefaultIDs, id)
	for i := range m.agents {
		m.agents[i].IsDefault = m.agents[i].AgentID == id
	}
	return nil
}

// mockAgentCache counts invalidations.
type mockAgentCache struct {
	cached          *model.AgentConfiguration
	invalidateCalls int
	setCalls        int
}

func (m *mockAgentCache) GetDefaultAgent(ctx context.Context) (*model.AgentConfiguration, bool) {
	return m.cached, m.cached != nil
}

func (m *mockAgentCache) SetDefaultAgent(ctx context.Context, agent *model.AgentConfiguration) {
	m.setCalls++
	m.cached = agent
}

func (m *mockAgentCache) InvalidateDefaultAgent(ctx context.Context) {
	m.invalidateCalls++
	m.cached = nil
}

// mockProber fails for the providers listed in failFor.
type mockProber struct {
	failFor map[string]error
	probed  []string
}

func (m *mockProber) Probe(ctx context.Context, agent *model.AgentConfiguration) error {
	m.probed = append(m.probed, agent.Provider)
	if err, ok := m.failFor[agent.Provider]; ok {
		return err
	}
	return nil
}

// mockRoleDAO serves a fixed set of roles.
type mockRoleDAO struct {
	roles []model.Role
	err   error
}

func (m *mockRoleDAO) GetAll(ctx context.Context) ([]model.Role, error) {
	return m.roles, m.err
}

func (m *mockRoleDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.roles {
		if m.roles[i].RoleID == id {
			r := m.roles[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *mockRoleDAO) GetByName(ctx context.Context, name string) (*model.Role, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.roles {
		if m.roles[i].RoleName == name {
			r := m.roles[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *mockRoleDAO) Create(ctx context.Context, role *model.Role) error {
	if m.err != nil {
		return m.err
	}
	role.RoleID = uuid.New()
	m.roles = append(m.roles, *role)
	return nil
}

func (m *mockRoleDAO) Update(ctx context.Context, id uuid.UUID, update repository.RoleUpdate) (*model.Role, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.roles {
		if m.roles[i].RoleID == id {
			if update.RoleName != nil {
				m.roles[i].RoleName = *update.RoleName
			}
			if update.Description != nil {
				m.roles[i].Description = *update.Description
			}
			r := m.roles[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *mockRoleDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.roles {
		if m.roles[i].RoleID == id {
			m.roles = append(m.roles[:i], m.roles[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// mockUserDAO stores users in memory; createErr fails Create once.
type mockUserDAO struct {
	users     []model.User
	createErr error
}

func (m *mockUserDAO) GetAll(ctx context.Context) ([]model.User, error) {
	return m.users, nil
}

func (m *mockUserDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	for i := range m.users {
		if m.users[i].UserID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *mockUserDAO) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	for i := range m.users {
		if m.users[i].Username == username {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *mockUserDAO) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *mockUserDAO) Create(ctx context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.users = append(m.users, *user)
	return nil
}

func (m *mockUserDAO) Update(ctx context.Context, id uuid.UUID, update repository.UserUpdate) (*model.User, error) {
	for i := range m.users {
		if m.users[i].UserID == id {
			if update.Username != nil {
				m.users[i].Username = *update.Username
			}
			if update.IsActive != nil {
				m.users[i].IsActive = *update.IsActive
			}
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *mockUserDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i := range m.users {
		if m.users[i].UserID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// mockProvisioner records identity operations.
type mockProvisioner struct {
	emailExists   bool
	createErr     error
	createdID     uuid.UUID
	deletedIDs    []uuid.UUID
	createdUsers  []string
	existsQueries []string
}

func (m *mockProvisioner) CreateUser(ctx context.Context, username, email, firstName, lastName string) (uuid.UUID, error) {
	if m.createErr != nil {
		return uuid.Nil, m.createErr
	}
	if m.createdID == uuid.Nil {
		m.createdID = uuid.New()
	}
	m.createdUsers = append(m.createdUsers, username)
	return m.createdID, nil
}

func (m *mockProvisioner) EmailExists(ctx context.Context, email string) (bool, error) {
	m.existsQueries = append(m.existsQueries, email)
	return m.emailExists, nil
}

func (m *mockProvisioner) DeleteUser(ctx context.Context, id uuid.UUID) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

var errBoom = fmt.Errorf("boom")
