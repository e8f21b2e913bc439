// Package sqlite stores local batch transcription runs. The batch and
// export CLI commands use it; the server never touches this database.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"notary-api/internal/app/model"
)

type BatchDB struct {
	db *sql.DB
}

func NewBatchDB(dbFilePath string) (*BatchDB, error) {
	db, err := sql.Open("sqlite3", dbFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	b := &BatchDB{db: db}
	if err := b.init(); err != nil {
		db.Close()
		return nil, err
	}
	return b, nil
}

func (b *BatchDB) init() error {
	schema := `
		CREATE TABLE IF NOT EXISTS batch_records (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			file_name        TEXT NOT NULL,
			duration_seconds INTEGER NOT NULL DEFAULT 0,
			text_content     TEXT NOT NULL DEFAULT '',
			has_error        INTEGER NOT NULL DEFAULT 0,
			error_message    TEXT NOT NULL DEFAULT '',
			created_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`
	if _, err := b.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create batch_records table: %v", err)
	}
	return nil
}

func (b *BatchDB) Close() error {
	return b.db.Close()
}

// IsProcessed reports whether fileName already has a record, failed or not.
// Failed files are not retried automatically; delete the row to retry.
func (b *BatchDB) IsProcessed(fileName string) (bool, error) {
	query := `SELECT id FROM batch_records WHERE file_name = ?`
	var id int64
	err := b.db.QueryRow(query, fileName).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query failed: %v", err)
	}
	return true, nil
}

func (b *BatchDB) Record(rec *model.BatchRecord) error {
	insertSQL := `
		INSERT INTO batch_records (file_name, duration_seconds, text_content, has_error, error_message)
		VALUES (?, ?, ?, ?, ?)`
	res, err := b.db.Exec(insertSQL,
		rec.FileName, rec.DurationSeconds, rec.TextContent, rec.HasError, rec.ErrorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert batch record: %v", err)
	}
	rec.ID, _ = res.LastInsertId()
	return nil
}

// GetAll returns successful records, newest first.
func (b *BatchDB) GetAll() ([]model.BatchRecord, error) {
	query := `
		SELECT id, file_name, duration_seconds, text_content, error_message, created_at
		FROM batch_records
		WHERE has_error = 0
		ORDER BY created_at DESC`
	rows, err := b.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	records := make([]model.BatchRecord, 0)
	for rows.Next() {
		var rec model.BatchRecord
		err = rows.Scan(&rec.ID, &rec.FileName, &rec.DurationSeconds, &rec.TextContent,
			&rec.ErrorMessage, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %v", err)
	}
	return records, nil
}
