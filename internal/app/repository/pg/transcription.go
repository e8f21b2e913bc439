package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// TranscriptionDAO is the PostgreSQL implementation of repository.TranscriptionDAO.
type TranscriptionDAO struct {
	db *sql.DB
}

func NewTranscriptionDAO(db *sql.DB) *TranscriptionDAO {
	return &TranscriptionDAO{db: db}
}

const transcriptionColumns = `transcription_id, audio_url, COALESCE(text_content, ''),
	COALESCE(duration_seconds, 0), status, agent_id, created_by, created_at, updated_at`

func scanTranscription(row interface{ Scan(...any) error }) (*model.Transcription, error) {
	var t model.Transcription
	err := row.Scan(&t.TranscriptionID, &t.AudioURL, &t.TextContent,
		&t.DurationSeconds, &t.Status, &t.AgentID, &t.CreatedBy,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (d *TranscriptionDAO) GetAll(ctx context.Context) ([]model.Transcription, error) {
	query := `SELECT ` + transcriptionColumns + ` FROM notary.transcriptions ORDER BY created_at DESC`
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	var transcriptions []model.Transcription
	for rows.Next() {
		t, err := scanTranscription(rows)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}
		transcriptions = append(transcriptions, *t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %v", err)
	}
	return transcriptions, nil
}

func (d *TranscriptionDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.Transcription, error) {
	query := `SELECT ` + transcriptionColumns + ` FROM notary.transcriptions WHERE transcription_id = $1`
	t, err := scanTranscription(d.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	return t, nil
}

func (d *TranscriptionDAO) Create(ctx context.Context, t *model.Transcription) error {
	query := `
		INSERT INTO notary.transcriptions (audio_url, text_content, duration_seconds, status, agent_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING transcription_id, created_at, updated_at`
	err := d.db.QueryRowContext(ctx, query,
		t.AudioURL, nullString(t.TextContent), t.DurationSeconds, t.Status, t.AgentID, t.CreatedBy).
		Scan(&t.TranscriptionID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (d *TranscriptionDAO) Update(ctx context.Context, id uuid.UUID, update repository.TranscriptionUpdate) (*model.Transcription, error) {
	query := `
		UPDATE notary.transcriptions
		SET audio_url        = COALESCE($2, audio_url),
		    text_content     = COALESCE($3, text_content),
		    duration_seconds = COALESCE($4, duration_seconds),
		    status           = COALESCE($5, status),
		    updated_at       = now()
		WHERE transcription_id = $1
		RETURNING ` + transcriptionColumns
	t, err := scanTranscription(d.db.QueryRowContext(ctx, query, id,
		update.AudioURL, update.TextContent, update.DurationSeconds, update.Status))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return t, nil
}

func (d *TranscriptionDAO) UpdateTextContent(ctx context.Context, id uuid.UUID, textContent string) (*model.Transcription, error) {
	query := `
		UPDATE notary.transcriptions
		SET text_content = $2, updated_at = now()
		WHERE transcription_id = $1
		RETURNING ` + transcriptionColumns
	t, err := scanTranscription(d.db.QueryRowContext(ctx, query, id, textContent))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	return t, nil
}

func (d *TranscriptionDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := d.db.ExecContext(ctx, `DELETE FROM notary.transcriptions WHERE transcription_id = $1`, id)
	if err != nil {
		return false, translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected failed: %v", err)
	}
	return n > 0, nil
}
