package transcribe

import (
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mp3-transcriber/cmd/a2t/cmd/runtime"
	"mp3-transcriber/internal/app"
	"mp3-transcriber/internal/app/converter"
	"mp3-transcriber/internal/app/converter/export"
	apperrors "mp3-transcriber/internal/app/errors"
	"mp3-transcriber/internal/app/intake"
	"mp3-transcriber/internal/app/model"
	"mp3-transcriber/internal/app/util/files"
)

// Options are the transcribe command flags.
type Options struct {
	Dir      string
	Format   string
	Output   string
	Progress bool
	Quiet    bool
}

var opts Options

func init() {
	Cmd.Flags().StringVarP(&opts.Dir, "dir", "d", "", "also transcribe every file with an allowed extension in this directory, oldest first")
	Cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "export format: csv, zip or xlsx (default from A2T_EXPORT_FORMAT)")
	Cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "export file path (default transcriptions.<format> in the current directory)")
	Cmd.Flags().BoolVar(&opts.Progress, "progress", false, "show a progress bar even when stderr is not a terminal")
	Cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "do not print transcripts to stdout")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe [files...]",
	Short: "Transcribe audio files and export the transcripts",
	Long: `Transcribe audio files and export the transcripts

- Files are processed one at a time in the order given
- Oversized files and files with other extensions are skipped with a warning
- A failure on one file never stops the rest of the batch
- Transcripts are printed to stdout and written to a single export file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && opts.Dir == "" {
			return apperrors.New("no input: pass files or --dir")
		}

		cfg, logger, err := runtime.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if opts.Format == "" {
			opts.Format = cfg.Export.DefaultFormat
		}

		paths := args
		if opts.Dir != "" {
			found, err := files.GetAllFiles(opts.Dir, cfg.Intake.AllowedExtensions)
			if err != nil {
				return err
			}
			paths = append(paths, lo.Map(found, func(f model.FileInfo, _ int) string { return f.FullPath })...)
		}

		pipeline, err := app.InitializePipeline(cfg, logger)
		if err != nil {
			return err
		}

		return Run(opts, pipeline, paths, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
	},
}

// Run transcribes paths and writes the export. Warnings go to stderr and
// transcripts to stdout.
func Run(opts Options, pipeline *app.Pipeline, paths []string, stdout, stderr io.Writer, logger *zap.Logger) error {
	format, err := export.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	uploads := intake.FromFiles(paths)

	var observer converter.Observer
	var progress *converter.ProgressObserver
	if converter.ShouldShowProgress(opts.Progress) {
		manager := converter.NewProgressManager(converter.ProgressConfig{Enabled: true, Writer: stderr})
		progress = converter.NewProgressObserver(manager, len(uploads))
		observer = progress
	}

	report := pipeline.Converter.Process(uploads, observer)
	if progress != nil {
		progress.Done()
	}

	for _, w := range report.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", w.Message)
	}

	if !opts.Quiet {
		for _, r := range report.Results {
			fmt.Fprintf(stdout, "== %s ==\n%s\n\n", r.FileName, r.Text)
		}
	}

	artifact, err := pipeline.Exporter.Export(format, report.Results)
	if err != nil {
		return err
	}

	output := opts.Output
	if output == "" {
		output = artifact.FileName
	}
	if err := os.WriteFile(output, artifact.Data, 0o644); err != nil {
		return apperrors.Mark(err, apperrors.ErrFileWriteFailed)
	}

	logger.Info("export written",
		zap.String("path", output),
		zap.String("batch_id", report.ID),
		zap.Int("transcribed", len(report.Results)),
		zap.Int("skipped", report.Skipped()),
	)
	fmt.Fprintf(stderr, "%d transcribed, %d skipped, exported to %s\n", len(report.Results), report.Skipped(), output)
	return nil
}
