// Package pg implements the repository DAOs against PostgreSQL.
package pg

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"notary-api/internal/app/repository"
)

// NewConnection opens and verifies a PostgreSQL connection.
func NewConnection(connectionString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}
	return db, nil
}

// translateErr maps PostgreSQL constraint violations onto the repository
// sentinels so the service layer does not depend on driver error codes.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return repository.ErrDuplicate
		case "23503":
			return repository.ErrInUse
		}
	}
	return err
}

// marshalJSON renders a map column, defaulting to an empty object so
// NOT NULL jsonb columns stay satisfiable.
func marshalJSON(m map[string]any) ([]byte, error) {
	if m == nil {
		m = map[string]any{}
	}
	return json.Marshal(m)
}

func unmarshalJSON(raw []byte, dst *map[string]any) error {
	if len(raw) == 0 {
		*dst = map[string]any{}
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
