package pg

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"notary-api/internal/app/repository"
)

func TestAgentDAO_Interface(t *testing.T) {
	var _ repository.AgentDAO = (*AgentDAO)(nil)
}

func TestAgentDAO_SetDefault_SwapsInOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE notary\.ai_agent_configurations SET is_default = false.+WHERE is_default`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE notary\.ai_agent_configurations SET is_default = true.+WHERE agent_id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	dao := NewAgentDAO(db)
	require.NoError(t, dao.SetDefault(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgentDAO_SetDefault_UnknownAgentRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE notary\.ai_agent_configurations SET is_default = false.+WHERE is_default`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE notary\.ai_agent_configurations SET is_default = true.+WHERE agent_id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	dao := NewAgentDAO(db)
	err = dao.SetDefault(context.Background(), id)
	assert.ErrorIs(t, err, sql.ErrNoRows, "the cleared default must be restored by the rollback")
	assert.NoError(t, mock.ExpectationsWereMet())
}
