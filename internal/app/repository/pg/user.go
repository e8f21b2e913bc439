package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// UserDAO is the PostgreSQL implementation of repository.UserDAO.
type UserDAO struct {
	db *sql.DB
}

func NewUserDAO(db *sql.DB) *UserDAO {
	return &UserDAO{db: db}
}

const userColumns = `user_id, username, email, COALESCE(first_name, ''), COALESCE(last_name, ''), is_active, role_id, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.UserID, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.IsActive, &u.RoleID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *UserDAO) GetAll(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM notary.users ORDER BY username`
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}
		users = append(users, *u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %v", err)
	}
	return users, nil
}

func (d *UserDAO) getOne(ctx context.Context, where string, arg any) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM notary.users WHERE ` + where
	u, err := scanUser(d.db.QueryRowContext(ctx, query, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	return u, nil
}

func (d *UserDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return d.getOne(ctx, `user_id = $1`, id)
}

func (d *UserDAO) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return d.getOne(ctx, `username = $1`, username)
}

func (d *UserDAO) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return d.getOne(ctx, `email = $1`, email)
}

func (d *UserDAO) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO notary.users (user_id, username, email, first_name, last_name, is_active, role_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`
	err := d.db.QueryRowContext(ctx, query,
		user.UserID, user.Username, user.Email,
		nullString(user.FirstName), nullString(user.LastName),
		user.IsActive, user.RoleID).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (d *UserDAO) Update(ctx context.Context, id uuid.UUID, update repository.UserUpdate) (*model.User, error) {
	query := `
		UPDATE notary.users
		SET username   = COALESCE($2, username),
		    email      = COALESCE($3, email),
		    first_name = COALESCE($4, first_name),
		    last_name  = COALESCE($5, last_name),
		    is_active  = COALESCE($6, is_active),
		    role_id    = COALESCE($7, role_id),
		    updated_at = now()
		WHERE user_id = $1
		RETURNING ` + userColumns
	u, err := scanUser(d.db.QueryRowContext(ctx, query, id,
		update.Username, update.Email, update.FirstName, update.LastName,
		update.IsActive, update.RoleID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return u, nil
}

func (d *UserDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := d.db.ExecContext(ctx, `DELETE FROM notary.users WHERE user_id = $1`, id)
	if err != nil {
		return false, translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected failed: %v", err)
	}
	return n > 0, nil
}
