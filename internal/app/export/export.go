// Package export writes batch transcription records to an xlsx workbook.
package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"
	"notary-api/internal/app/model"
)

// ToExcel writes the records to outputFilePath as a single-sheet workbook.
func ToExcel(records []model.BatchRecord, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %v", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "File Name"
	headerRow.AddCell().Value = "Duration (s)"
	headerRow.AddCell().Value = "Transcription"
	headerRow.AddCell().Value = "Created At"

	for _, rec := range records {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(rec.ID)
		row.AddCell().Value = rec.FileName
		row.AddCell().Value = fmt.Sprint(rec.DurationSeconds)
		row.AddCell().Value = rec.TextContent
		row.AddCell().Value = rec.CreatedAt.Format(time.RFC3339)
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save workbook: %v", err)
	}
	return nil
}
