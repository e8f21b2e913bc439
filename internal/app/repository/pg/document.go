package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// DocumentDAO is the PostgreSQL implementation of repository.DocumentDAO.
type DocumentDAO struct {
	db *sql.DB
}

func NewDocumentDAO(db *sql.DB) *DocumentDAO {
	return &DocumentDAO{db: db}
}

const documentColumns = `document_id, document_name, document_type_id, template_id,
	COALESCE(text_content, ''), pdf_url, dynamic_data, created_by, created_at, updated_at`

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var doc model.Document
	var rawData []byte
	err := row.Scan(&doc.DocumentID, &doc.DocumentName, &doc.DocumentTypeID, &doc.TemplateID,
		&doc.TextContent, &doc.PDFURL, &rawData, &doc.CreatedBy, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSON(rawData, &doc.DynamicData); err != nil {
		return nil, fmt.Errorf("dynamic_data decode failed: %v", err)
	}
	return &doc, nil
}

func (d *DocumentDAO) GetAll(ctx context.Context) ([]model.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM notary.documents ORDER BY created_at DESC`
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	var documents []model.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}
		documents = append(documents, *doc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %v", err)
	}
	return documents, nil
}

func (d *DocumentDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM notary.documents WHERE document_id = $1`
	doc, err := scanDocument(d.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	return doc, nil
}

func (d *DocumentDAO) Create(ctx context.Context, doc *model.Document) error {
	rawData, err := marshalJSON(doc.DynamicData)
	if err != nil {
		return fmt.Errorf("dynamic_data encode failed: %v", err)
	}
	query := `
		INSERT INTO notary.documents
			(document_name, document_type_id, template_id, text_content, pdf_url, dynamic_data, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING document_id, created_at, updated_at`
	err = d.db.QueryRowContext(ctx, query,
		doc.DocumentName, doc.DocumentTypeID, doc.TemplateID,
		nullString(doc.TextContent), doc.PDFURL, rawData, doc.CreatedBy).
		Scan(&doc.DocumentID, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (d *DocumentDAO) Update(ctx context.Context, id uuid.UUID, update repository.DocumentUpdate) (*model.Document, error) {
	var rawData []byte
	if update.DynamicData != nil {
		var err error
		rawData, err = marshalJSON(update.DynamicData)
		if err != nil {
			return nil, fmt.Errorf("dynamic_data encode failed: %v", err)
		}
	}
	query := `
		UPDATE notary.documents
		SET document_name    = COALESCE($2, document_name),
		    document_type_id = COALESCE($3, document_type_id),
		    template_id      = COALESCE($4, template_id),
		    text_content     = COALESCE($5, text_content),
		    pdf_url          = COALESCE($6, pdf_url),
		    dynamic_data     = COALESCE($7, dynamic_data),
		    updated_at       = now()
		WHERE document_id = $1
		RETURNING ` + documentColumns
	doc, err := scanDocument(d.db.QueryRowContext(ctx, query, id,
		update.DocumentName, update.DocumentTypeID, update.TemplateID,
		update.TextContent, update.PDFURL, rawData))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return doc, nil
}

func (d *DocumentDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := d.db.ExecContext(ctx, `DELETE FROM notary.documents WHERE document_id = $1`, id)
	if err != nil {
		return false, translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected failed: %v", err)
	}
	return n > 0, nil
}
