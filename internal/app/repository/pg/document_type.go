package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// DocumentTypeDAO is the PostgreSQL implementation of repository.DocumentTypeDAO.
type DocumentTypeDAO struct {
	db *sql.DB
}

func NewDocumentTypeDAO(db *sql.DB) *DocumentTypeDAO {
	return &DocumentTypeDAO{db: db}
}

const documentTypeColumns = `document_type_id, type_name, COALESCE(description, ''), created_at, updated_at`

func scanDocumentType(row interface{ Scan(...any) error }) (*model.DocumentType, error) {
	var dt model.DocumentType
	err := row.Scan(&dt.DocumentTypeID, &dt.TypeName, &dt.Description, &dt.CreatedAt, &dt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &dt, nil
}

func (d *DocumentTypeDAO) GetAll(ctx context.Context) ([]model.DocumentType, error) {
	query := `SELECT ` + documentTypeColumns + ` FROM notary.document_types ORDER BY type_name`
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	var types []model.DocumentType
	for rows.Next() {
		dt, err := scanDocumentType(rows)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}
		types = append(types, *dt)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %v", err)
	}
	return types, nil
}

func (d *DocumentTypeDAO) getOne(ctx context.Context, where string, arg any) (*model.DocumentType, error) {
	query := `SELECT ` + documentTypeColumns + ` FROM notary.document_types WHERE ` + where
	dt, err := scanDocumentType(d.db.QueryRowContext(ctx, query, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	return dt, nil
}

func (d *DocumentTypeDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.DocumentType, error) {
	return d.getOne(ctx, `document_type_id = $1`, id)
}

func (d *DocumentTypeDAO) GetByName(ctx context.Context, name string) (*model.DocumentType, error) {
	return d.getOne(ctx, `type_name = $1`, name)
}

func (d *DocumentTypeDAO) Create(ctx context.Context, dt *model.DocumentType) error {
	query := `
		INSERT INTO notary.document_types (type_name, description)
		VALUES ($1, $2)
		RETURNING document_type_id, created_at, updated_at`
	err := d.db.QueryRowContext(ctx, query, dt.TypeName, nullString(dt.Description)).
		Scan(&dt.DocumentTypeID, &dt.CreatedAt, &dt.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (d *DocumentTypeDAO) Update(ctx context.Context, id uuid.UUID, update repository.DocumentTypeUpdate) (*model.DocumentType, error) {
	query := `
		UPDATE notary.document_types
		SET type_name   = COALESCE($2, type_name),
		    description = COALESCE($3, description),
		    updated_at  = now()
		WHERE document_type_id = $1
		RETURNING ` + documentTypeColumns
	dt, err := scanDocumentType(d.db.QueryRowContext(ctx, query, id, update.TypeName, update.Description))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return dt, nil
}

func (d *DocumentTypeDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := d.db.ExecContext(ctx, `DELETE FROM notary.document_types WHERE document_type_id = $1`, id)
	if err != nil {
		return false, translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected failed: %v", err)
	}
	return n > 0, nil
}
