package export

import (
	"fmt"

	"github.com/spf13/cobra"
	"notary-api/internal/app/export"
	"notary-api/internal/app/repository/sqlite"
)

var dbPath string
var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&dbPath, "dbPath", "d", "data/batch.db",
		"path of the SQLite database holding batch results")
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "",
		"path of the xlsx workbook to write")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export batch transcription results to excel",
	Long: `Export batch transcription results to excel

- Exports every successful batch record to a single-sheet workbook`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.NewBatchDB(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := db.GetAll()
		if err != nil {
			return err
		}

		if err := export.ToExcel(records, outputFilePath); err != nil {
			return err
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
		return nil
	},
}
