package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"mp3-transcriber/internal/api/server"
	"mp3-transcriber/internal/api/v1/services"
	"mp3-transcriber/internal/app/api"
	"mp3-transcriber/internal/app/api/provider"
	"mp3-transcriber/internal/app/converter"
	"mp3-transcriber/internal/app/converter/export"
	"mp3-transcriber/internal/app/intake"
	"mp3-transcriber/internal/app/metrics"
	"mp3-transcriber/internal/config"
)

// Pipeline is what the CLI needs to run one batch and export it.
type Pipeline struct {
	Converter *converter.Converter
	Exporter  *export.Exporter
}

// PipelineSet provides everything between configuration and a Pipeline.
var PipelineSet = wire.NewSet(
	ProvideValidator,
	ProvideTranscriber,
	ProvideAdapter,
	ProvideRegistry,
	ProvideMetrics,
	ProvideExporter,
	converter.NewConverter,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
)

func ProvideValidator(cfg *config.Config) (*intake.Validator, error) {
	return intake.NewValidator(cfg.Intake.Policy())
}

func ProvideTranscriber(cfg *config.Config, logger *zap.Logger) (api.Transcriber, error) {
	return provider.New(cfg.Transcriber, logger)
}

func ProvideAdapter(transcriber api.Transcriber, cfg *config.Config, logger *zap.Logger) *api.Adapter {
	return api.NewAdapter(transcriber, cfg.TempDir, logger)
}

// ProvideRegistry returns a fresh registry with the Go runtime collectors.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func ProvideMetrics(reg prometheus.Registerer) *metrics.Metrics {
	return metrics.New(reg)
}

func ProvideExporter(cfg *config.Config, m *metrics.Metrics) *export.Exporter {
	return export.NewExporter(cfg.Export.HeaderLanguage, m)
}

// ProvideServer assembles the HTTP front-end.
func ProvideServer(
	cfg *config.Config,
	conv *converter.Converter,
	exporter *export.Exporter,
	reg *prometheus.Registry,
	logger *zap.Logger,
) *server.Server {
	return server.NewServer(
		cfg.Environment,
		cfg.Server,
		services.NewTranscriptionService(conv, logger),
		services.NewExportService(exporter, export.Format(cfg.Export.DefaultFormat), logger),
		reg,
		logger,
	)
}
