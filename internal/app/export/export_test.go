package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"notary-api/internal/app/model"
)

func TestToExcel(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "out.xlsx")
	records := []model.BatchRecord{
		{ID: 1, FileName: "a.mp3", DurationSeconds: 90, TextContent: "first dictation", CreatedAt: time.Now()},
		{ID: 2, FileName: "b.mp3", DurationSeconds: 12, TextContent: "second dictation", CreatedAt: time.Now()},
	}

	require.NoError(t, ToExcel(records, outputPath))

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Transcriptions", sheet.Name)
	require.Len(t, sheet.Rows, 3, "header plus one row per record")

	assert.Equal(t, "File Name", sheet.Rows[0].Cells[1].String())
	assert.Equal(t, "a.mp3", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "second dictation", sheet.Rows[2].Cells[3].String())
}

func TestToExcel_EmptyRecords(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.xlsx")

	require.NoError(t, ToExcel(nil, outputPath))

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets[0].Rows, 1, "header only")
}
