package batch

import (
	"github.com/spf13/cobra"
	"notary-api/internal/app"
	"notary-api/internal/app/logger"
	"notary-api/internal/app/repository/sqlite"
	"notary-api/internal/config"
)

var inputDir string
var dbPath string
var limit int

func init() {
	Cmd.Flags().StringVarP(&inputDir, "inputDir", "i", "",
		"directory containing the audio files to transcribe")
	Cmd.Flags().StringVarP(&dbPath, "dbPath", "d", "data/batch.db",
		"path of the SQLite database recording batch results")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 0,
		"maximum number of files to process in this run, 0 means all")

	Cmd.MarkFlagRequired("inputDir")
}

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Transcribe the audio files in a local directory",
	Long: `Transcribe the audio files in a local directory

- Iterates over the audio files in the given directory
- Skips files already recorded in the SQLite database
- Segments each file and transcribes it with Whisper`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadCLI()
		if err != nil {
			return err
		}

		zapLogger, err := logger.NewLogger(cfg.Environment != "production")
		if err != nil {
			return err
		}
		defer zapLogger.Sync()

		db, err := sqlite.NewBatchDB(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		processor := app.InitializeBatchProcessor(cfg, db, zapLogger)
		return processor.Run(cmd.Context(), inputDir, limit)
	},
}
