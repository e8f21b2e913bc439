package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// RoleDAO is the PostgreSQL implementation of repository.RoleDAO.
type RoleDAO struct {
	db *sql.DB
}

func NewRoleDAO(db *sql.DB) *RoleDAO {
	return &RoleDAO{db: db}
}

const roleColumns = `role_id, role_name, COALESCE(description, ''), created_at, updated_at`

func scanRole(row interface{ Scan(...any) error }) (*model.Role, error) {
	var r model.Role
	err := row.Scan(&r.RoleID, &r.RoleName, &r.Description, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (d *RoleDAO) GetAll(ctx context.Context) ([]model.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM notary.roles ORDER BY role_name`
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	var roles []model.Role
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}
		roles = append(roles, *r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %v", err)
	}
	return roles, nil
}

func (d *RoleDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM notary.roles WHERE role_id = $1`
	r, err := scanRole(d.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	return r, nil
}

func (d *RoleDAO) GetByName(ctx context.Context, name string) (*model.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM notary.roles WHERE role_name = $1`
	r, err := scanRole(d.db.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	return r, nil
}

func (d *RoleDAO) Create(ctx context.Context, role *model.Role) error {
	query := `
		INSERT INTO notary.roles (role_name, description)
		VALUES ($1, $2)
		RETURNING role_id, created_at, updated_at`
	err := d.db.QueryRowContext(ctx, query, role.RoleName, nullString(role.Description)).
		Scan(&role.RoleID, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (d *RoleDAO) Update(ctx context.Context, id uuid.UUID, update repository.RoleUpdate) (*model.Role, error) {
	query := `
		UPDATE notary.roles
		SET role_name   = COALESCE($2, role_name),
		    description = COALESCE($3, description),
		    updated_at  = now()
		WHERE role_id = $1
		RETURNING ` + roleColumns
	r, err := scanRole(d.db.QueryRowContext(ctx, query, id, update.RoleName, update.Description))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return r, nil
}

func (d *RoleDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := d.db.ExecContext(ctx, `DELETE FROM notary.roles WHERE role_id = $1`, id)
	if err != nil {
		return false, translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected failed: %v", err)
	}
	return n > 0, nil
}
