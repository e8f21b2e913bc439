package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"notary-api/internal/app/model"
)

func newTestDB(t *testing.T) *BatchDB {
	t.Helper()
	db, err := NewBatchDB(filepath.Join(t.TempDir(), "batch.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBatchDB_RecordAndIsProcessed(t *testing.T) {
	db := newTestDB(t)

	processed, err := db.IsProcessed("a.mp3")
	require.NoError(t, err)
	assert.False(t, processed)

	rec := &model.BatchRecord{
		FileName:        "a.mp3",
		DurationSeconds: 42,
		TextContent:     "hello",
	}
	require.NoError(t, db.Record(rec))
	assert.NotZero(t, rec.ID)

	processed, err = db.IsProcessed("a.mp3")
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestBatchDB_FailedRunCountsAsProcessed(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Record(&model.BatchRecord{
		FileName:     "broken.mp3",
		HasError:     true,
		ErrorMessage: "duration probe failed",
	}))

	processed, err := db.IsProcessed("broken.mp3")
	require.NoError(t, err)
	assert.True(t, processed, "failed files are not retried automatically")
}

func TestBatchDB_GetAllSkipsFailures(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Record(&model.BatchRecord{FileName: "ok.mp3", TextContent: "text"}))
	require.NoError(t, db.Record(&model.BatchRecord{FileName: "bad.mp3", HasError: true, ErrorMessage: "x"}))

	records, err := db.GetAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ok.mp3", records[0].FileName)
}
