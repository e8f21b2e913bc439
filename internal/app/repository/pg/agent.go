package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// AgentDAO is the PostgreSQL implementation of repository.AgentDAO.
type AgentDAO struct {
	db *sql.DB
}

func NewAgentDAO(db *sql.DB) *AgentDAO {
	return &AgentDAO{db: db}
}

const agentColumns = `agent_id, agent_name, provider, model_name, COALESCE(api_base_url, ''),
	COALESCE(api_key_secret_name, ''), config_json, is_active, is_default, created_at, updated_at`

func scanAgent(row interface{ Scan(...any) error }) (*model.AgentConfiguration, error) {
	var a model.AgentConfiguration
	var rawConfig []byte
	err := row.Scan(&a.AgentID, &a.AgentName, &a.Provider, &a.ModelName,
		&a.APIBaseURL, &a.APIKeySecretName, &rawConfig,
		&a.IsActive, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSON(rawConfig, &a.ConfigJSON); err != nil {
		return nil, fmt.Errorf("config_json decode failed: %v", err)
	}
	return &a, nil
}

func (d *AgentDAO) queryAgents(ctx context.Context, query string, args ...any) ([]model.AgentConfiguration, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	var agents []model.AgentConfiguration
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}
		agents = append(agents, *a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %v", err)
	}
	return agents, nil
}

func (d *AgentDAO) getOne(ctx context.Context, where string, args ...any) (*model.AgentConfiguration, error) {
	query := `SELECT ` + agentColumns + ` FROM notary.ai_agent_configurations WHERE ` + where
	a, err := scanAgent(d.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	return a, nil
}

func (d *AgentDAO) GetAll(ctx context.Context) ([]model.AgentConfiguration, error) {
	return d.queryAgents(ctx, `SELECT `+agentColumns+` FROM notary.ai_agent_configurations ORDER BY agent_name`)
}

func (d *AgentDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.AgentConfiguration, error) {
	return d.getOne(ctx, `agent_id = $1`, id)
}

func (d *AgentDAO) GetByName(ctx context.Context, name string) (*model.AgentConfiguration, error) {
	return d.getOne(ctx, `agent_name = $1`, name)
}

func (d *AgentDAO) GetDefault(ctx context.Context) (*model.AgentConfiguration, error) {
	return d.getOne(ctx, `is_default`)
}

func (d *AgentDAO) GetActiveExcept(ctx context.Context, id uuid.UUID) ([]model.AgentConfiguration, error) {
	query := `SELECT ` + agentColumns + `
		FROM notary.ai_agent_configurations
		WHERE is_active AND agent_id <> $1
		ORDER BY created_at`
	return d.queryAgents(ctx, query, id)
}

func (d *AgentDAO) Create(ctx context.Context, agent *model.AgentConfiguration) error {
	rawConfig, err := marshalJSON(agent.ConfigJSON)
	if err != nil {
		return fmt.Errorf("config_json encode failed: %v", err)
	}
	query := `
		INSERT INTO notary.ai_agent_configurations
			(agent_name, provider, model_name, api_base_url, api_key_secret_name, config_json, is_active, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING agent_id, created_at, updated_at`
	err = d.db.QueryRowContext(ctx, query,
		agent.AgentName, agent.Provider, agent.ModelName,
		nullString(agent.APIBaseURL), nullString(agent.APIKeySecretName),
		rawConfig, agent.IsActive, agent.IsDefault).
		Scan(&agent.AgentID, &agent.CreatedAt, &agent.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (d *AgentDAO) Update(ctx context.Context, id uuid.UUID, update repository.AgentUpdate) (*model.AgentConfiguration, error) {
	var rawConfig []byte
	if update.ConfigJSON != nil {
		var err error
		rawConfig, err = marshalJSON(update.ConfigJSON)
		if err != nil {
			return nil, fmt.Errorf("config_json encode failed: %v", err)
		}
	}
	query := `
		UPDATE notary.ai_agent_configurations
		SET agent_name          = COALESCE($2, agent_name),
		    provider            = COALESCE($3, provider),
		    model_name          = COALESCE($4, model_name),
		    api_base_url        = COALESCE($5, api_base_url),
		    api_key_secret_name = COALESCE($6, api_key_secret_name),
		    config_json         = COALESCE($7, config_json),
		    is_active           = COALESCE($8, is_active),
		    is_default          = COALESCE($9, is_default),
		    updated_at          = now()
		WHERE agent_id = $1
		RETURNING ` + agentColumns
	a, err := scanAgent(d.db.QueryRowContext(ctx, query, id,
		update.AgentName, update.Provider, update.ModelName,
		update.APIBaseURL, update.APIKeySecretName,
		rawConfig, update.IsActive, update.IsDefault))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return a, nil
}

func (d *AgentDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := d.db.ExecContext(ctx, `DELETE FROM notary.ai_agent_configurations WHERE agent_id = $1`, id)
	if err != nil {
		return false, translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected failed: %v", err)
	}
	return n > 0, nil
}

// SetDefault makes the given agent the single default. The clear and the
// set run in one transaction so a failure never leaves no default behind.
func (d *AgentDAO) SetDefault(ctx context.Context, id uuid.UUID) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin failed: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE notary.ai_agent_configurations SET is_default = false, updated_at = now() WHERE is_default`); err != nil {
		return fmt.Errorf("unset defaults failed: %v", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE notary.ai_agent_configurations SET is_default = true, updated_at = now() WHERE agent_id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %v", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit()
}
