package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// CompositionDAO is the PostgreSQL implementation of repository.CompositionDAO.
type CompositionDAO struct {
	db *sql.DB
}

func NewCompositionDAO(db *sql.DB) *CompositionDAO {
	return &CompositionDAO{db: db}
}

const compositionColumns = `template_id, section_id, order_index, is_mandatory`

func scanComposition(row interface{ Scan(...any) error }) (*model.SectionComposition, error) {
	var c model.SectionComposition
	err := row.Scan(&c.TemplateID, &c.SectionID, &c.OrderIndex, &c.IsMandatory)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (d *CompositionDAO) queryCompositions(ctx context.Context, query string, args ...any) ([]model.SectionComposition, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	var compositions []model.SectionComposition
	for rows.Next() {
		c, err := scanComposition(rows)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}
		compositions = append(compositions, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %v", err)
	}
	return compositions, nil
}

func (d *CompositionDAO) GetAll(ctx context.Context) ([]model.SectionComposition, error) {
	query := `SELECT ` + compositionColumns + `
		FROM notary.template_section_compositions
		ORDER BY template_id, order_index`
	return d.queryCompositions(ctx, query)
}

func (d *CompositionDAO) GetByIDs(ctx context.Context, templateID, sectionID uuid.UUID) (*model.SectionComposition, error) {
	query := `SELECT ` + compositionColumns + `
		FROM notary.template_section_compositions
		WHERE template_id = $1 AND section_id = $2`
	c, err := scanComposition(d.db.QueryRowContext(ctx, query, templateID, sectionID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	return c, nil
}

func (d *CompositionDAO) GetByTemplateID(ctx context.Context, templateID uuid.UUID) ([]model.SectionComposition, error) {
	query := `SELECT ` + compositionColumns + `
		FROM notary.template_section_compositions
		WHERE template_id = $1
		ORDER BY order_index`
	return d.queryCompositions(ctx, query, templateID)
}

func (d *CompositionDAO) Create(ctx context.Context, c *model.SectionComposition) error {
	query := `
		INSERT INTO notary.template_section_compositions (template_id, section_id, order_index, is_mandatory)
		VALUES ($1, $2, $3, $4)`
	_, err := d.db.ExecContext(ctx, query, c.TemplateID, c.SectionID, c.OrderIndex, c.IsMandatory)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (d *CompositionDAO) Update(ctx context.Context, templateID, sectionID uuid.UUID, update repository.CompositionUpdate) (*model.SectionComposition, error) {
	query := `
		UPDATE notary.template_section_compositions
		SET order_index  = COALESCE($3, order_index),
		    is_mandatory = COALESCE($4, is_mandatory)
		WHERE template_id = $1 AND section_id = $2
		RETURNING ` + compositionColumns
	c, err := scanComposition(d.db.QueryRowContext(ctx, query, templateID, sectionID,
		update.OrderIndex, update.IsMandatory))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return c, nil
}

func (d *CompositionDAO) Delete(ctx context.Context, templateID, sectionID uuid.UUID) (bool, error) {
	query := `DELETE FROM notary.template_section_compositions WHERE template_id = $1 AND section_id = $2`
	res, err := d.db.ExecContext(ctx, query, templateID, sectionID)
	if err != nil {
		return false, translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected failed: %v", err)
	}
	return n > 0, nil
}
