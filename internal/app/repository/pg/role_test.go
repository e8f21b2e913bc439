package pg

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

func TestRoleDAO_Interface(t *testing.T) {
	var _ repository.RoleDAO = (*RoleDAO)(nil)
}

func roleRows(roles ...model.Role) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"role_id", "role_name", "description", "created_at", "updated_at"})
	for _, r := range roles {
		rows.AddRow(r.RoleID, r.RoleName, r.Description, r.CreatedAt, r.UpdatedAt)
	}
	return rows
}

func TestRoleDAO_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	expected := []model.Role{
		{RoleID: uuid.New(), RoleName: "admin", CreatedAt: now, UpdatedAt: now},
		{RoleID: uuid.New(), RoleName: "notary", Description: "drafts documents", CreatedAt: now, UpdatedAt: now},
	}
	mock.ExpectQuery(`SELECT .+ FROM notary\.roles ORDER BY role_name`).
		WillReturnRows(roleRows(expected...))

	dao := NewRoleDAO(db)
	roles, err := dao.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, expected, roles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleDAO_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM notary\.roles WHERE role_id = \$1`).
		WithArgs(id).
		WillReturnRows(roleRows())

	dao := NewRoleDAO(db)
	role, err := dao.GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.Nil(t, role, "missing rows map to nil without error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleDAO_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`INSERT INTO notary\.roles`).
		WithArgs("notary", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"role_id", "created_at", "updated_at"}).
			AddRow(id, now, now))

	dao := NewRoleDAO(db)
	role := &model.Role{RoleName: "notary", Description: "drafts documents"}
	require.NoError(t, dao.Create(context.Background(), role))

	assert.Equal(t, id, role.RoleID)
	assert.Equal(t, now, role.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleDAO_Create_DuplicateName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO notary\.roles`).
		WithArgs("notary", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	dao := NewRoleDAO(db)
	err = dao.Create(context.Background(), &model.Role{RoleName: "notary"})

	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleDAO_Update_PartialFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	now := time.Now()
	name := "auditor"
	mock.ExpectQuery(`UPDATE notary\.roles`).
		WithArgs(id, name, nil).
		WillReturnRows(roleRows(model.Role{
			RoleID: id, RoleName: name, CreatedAt: now, UpdatedAt: now,
		}))

	dao := NewRoleDAO(db)
	role, err := dao.Update(context.Background(), id, repository.RoleUpdate{RoleName: &name})
	require.NoError(t, err)

	assert.Equal(t, name, role.RoleName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleDAO_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM notary\.roles WHERE role_id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	dao := NewRoleDAO(db)
	deleted, err := dao.Delete(context.Background(), id)
	require.NoError(t, err)

	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleDAO_Delete_InUse(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM notary\.roles WHERE role_id = \$1`).
		WithArgs(id).
		WillReturnError(&pq.Error{Code: "23503"})

	dao := NewRoleDAO(db)
	_, err = dao.Delete(context.Background(), id)

	assert.ErrorIs(t, err, repository.ErrInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}
