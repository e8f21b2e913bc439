package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// SectionDAO is the PostgreSQL implementation of repository.SectionDAO.
type SectionDAO struct {
	db *sql.DB
}

func NewSectionDAO(db *sql.DB) *SectionDAO {
	return &SectionDAO{db: db}
}

const sectionColumns = `section_id, section_name, section_content_template, variables_schema, COALESCE(description, '')`

func scanSection(row interface{ Scan(...any) error }) (*model.TemplateSection, error) {
	var s model.TemplateSection
	var rawSchema []byte
	err := row.Scan(&s.SectionID, &s.SectionName, &s.SectionContentTemplate, &rawSchema, &s.Description)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSON(rawSchema, &s.VariablesSchema); err != nil {
		return nil, fmt.Errorf("variables_schema decode failed: %v", err)
	}
	return &s, nil
}

func (d *SectionDAO) GetAll(ctx context.Context) ([]model.TemplateSection, error) {
	query := `SELECT ` + sectionColumns + ` FROM notary.template_sections ORDER BY section_name`
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	var sections []model.TemplateSection
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}
		sections = append(sections, *s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %v", err)
	}
	return sections, nil
}

func (d *SectionDAO) getOne(ctx context.Context, where string, arg any) (*model.TemplateSection, error) {
	query := `SELECT ` + sectionColumns + ` FROM notary.template_sections WHERE ` + where
	s, err := scanSection(d.db.QueryRowContext(ctx, query, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	return s, nil
}

func (d *SectionDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.TemplateSection, error) {
	return d.getOne(ctx, `section_id = $1`, id)
}

func (d *SectionDAO) GetByName(ctx context.Context, name string) (*model.TemplateSection, error) {
	return d.getOne(ctx, `section_name = $1`, name)
}

func (d *SectionDAO) Create(ctx context.Context, s *model.TemplateSection) error {
	rawSchema, err := marshalJSON(s.VariablesSchema)
	if err != nil {
		return fmt.Errorf("variables_schema encode failed: %v", err)
	}
	query := `
		INSERT INTO notary.template_sections (section_name, section_content_template, variables_schema, description)
		VALUES ($1, $2, $3, $4)
		RETURNING section_id`
	err = d.db.QueryRowContext(ctx, query,
		s.SectionName, s.SectionContentTemplate, rawSchema, nullString(s.Description)).
		Scan(&s.SectionID)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (d *SectionDAO) Update(ctx context.Context, id uuid.UUID, update repository.SectionUpdate) (*model.TemplateSection, error) {
	var rawSchema []byte
	if update.VariablesSchema != nil {
		var err error
		rawSchema, err = marshalJSON(update.VariablesSchema)
		if err != nil {
			return nil, fmt.Errorf("variables_schema encode failed: %v", err)
		}
	}
	query := `
		UPDATE notary.template_sections
		SET section_name             = COALESCE($2, section_name),
		    section_content_template = COALESCE($3, section_content_template),
		    variables_schema         = COALESCE($4, variables_schema),
		    description              = COALESCE($5, description)
		WHERE section_id = $1
		RETURNING ` + sectionColumns
	s, err := scanSection(d.db.QueryRowContext(ctx, query, id,
		update.SectionName, update.SectionContentTemplate, rawSchema, update.Description))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return s, nil
}

func (d *SectionDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := d.db.ExecContext(ctx, `DELETE FROM notary.template_sections WHERE section_id = $1`, id)
	if err != nil {
		return false, translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected failed: %v", err)
	}
	return n > 0, nil
}
