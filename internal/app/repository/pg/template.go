package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// TemplateDAO is the PostgreSQL implementation of repository.TemplateDAO.
type TemplateDAO struct {
	db *sql.DB
}

func NewTemplateDAO(db *sql.DB) *TemplateDAO {
	return &TemplateDAO{db: db}
}

const templateColumns = `template_id, template_name, COALESCE(description, ''),
	document_type_id, is_active, created_by, created_at, updated_at`

func scanTemplate(row interface{ Scan(...any) error }) (*model.Template, error) {
	var t model.Template
	err := row.Scan(&t.TemplateID, &t.TemplateName, &t.Description,
		&t.DocumentTypeID, &t.IsActive, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (d *TemplateDAO) GetAll(ctx context.Context) ([]model.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM notary.templates ORDER BY template_name`
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	var templates []model.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}
		templates = append(templates, *t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %v", err)
	}
	return templates, nil
}

func (d *TemplateDAO) getOne(ctx context.Context, where string, arg any) (*model.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM notary.templates WHERE ` + where
	t, err := scanTemplate(d.db.QueryRowContext(ctx, query, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	return t, nil
}

func (d *TemplateDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.Template, error) {
	return d.getOne(ctx, `template_id = $1`, id)
}

func (d *TemplateDAO) GetByName(ctx context.Context, name string) (*model.Template, error) {
	return d.getOne(ctx, `template_name = $1`, name)
}

func (d *TemplateDAO) Create(ctx context.Context, t *model.Template) error {
	query := `
		INSERT INTO notary.templates (template_name, description, document_type_id, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING template_id, created_at, updated_at`
	err := d.db.QueryRowContext(ctx, query,
		t.TemplateName, nullString(t.Description), t.DocumentTypeID, t.IsActive, t.CreatedBy).
		Scan(&t.TemplateID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (d *TemplateDAO) Update(ctx context.Context, id uuid.UUID, update repository.TemplateUpdate) (*model.Template, error) {
	query := `
		UPDATE notary.templates
		SET template_name    = COALESCE($2, template_name),
		    description      = COALESCE($3, description),
		    document_type_id = COALESCE($4, document_type_id),
		    is_active        = COALESCE($5, is_active),
		    updated_at       = now()
		WHERE template_id = $1
		RETURNING ` + templateColumns
	t, err := scanTemplate(d.db.QueryRowContext(ctx, query, id,
		update.TemplateName, update.Description, update.DocumentTypeID, update.IsActive))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return t, nil
}

func (d *TemplateDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := d.db.ExecContext(ctx, `DELETE FROM notary.templates WHERE template_id = $1`, id)
	if err != nil {
		return false, translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected failed: %v", err)
	}
	return n > 0, nil
}
