package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"notary-api/cmd/notary/cmd/batch"
	"notary-api/cmd/notary/cmd/export"
	"notary-api/cmd/notary/cmd/serve"
	"notary-api/cmd/notary/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notary",
	Short: "Notary transcription and document assembly service",
	Long: `Notary transcription and document assembly service.
- serve runs the HTTP API backed by Postgres
- batch transcribes a local directory of audio files into SQLite
- export writes batch results to an xlsx workbook`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(batch.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
