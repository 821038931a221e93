package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mp3-transcriber/cmd/a2t/cmd/runtime"
	"mp3-transcriber/internal/app"
)

var host string
var port string

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "listen address (overrides A2T_HOST)")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides A2T_PORT)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for uploading and exporting transcripts",
	Long: `Start the HTTP API for uploading and exporting transcripts

- POST /api/v1/transcriptions takes multipart "files" and returns a JSON report or, with ?format=, a download
- POST /api/v1/exports turns (possibly edited) results into CSV, ZIP or XLSX
- Stops gracefully on SIGINT or SIGTERM`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := runtime.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if host != "" {
			cfg.Server.Host = host
		}
		if port != "" {
			cfg.Server.Port = port
		}

		srv, err := app.InitializeServer(cfg, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			logger.Info("shutdown signal received", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
