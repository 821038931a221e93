package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"mp3-transcriber/cmd/a2t/cmd/config"
	"mp3-transcriber/cmd/a2t/cmd/runtime"
	"mp3-transcriber/cmd/a2t/cmd/serve"
	"mp3-transcriber/cmd/a2t/cmd/transcribe"
	"mp3-transcriber/cmd/a2t/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "a2t",
	Short: "Batch transcribe mp3 files and export the transcripts",
	Long: `Batch transcribe mp3 files and export the transcripts.
- Each file is checked for size and extension before anything is read
- Accepted files go through a speech-to-text model one at a time
- Transcripts are exported as CSV, a ZIP of text files, or XLSX`,
	SilenceUsage:     true,
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
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(config.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&runtime.Global.Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&runtime.Global.ConfigFile, "config", "", "YAML config file (environment variables override it)")
}
