//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"mp3-transcriber/internal/api/server"
	"mp3-transcriber/internal/config"
)

// InitializePipeline builds the batch converter and exporter for the CLI.
func InitializePipeline(cfg *config.Config, logger *zap.Logger) (*Pipeline, error) {
	wire.Build(PipelineSet, wire.Struct(new(Pipeline), "*"))
	return &Pipeline{}, nil
}

// InitializeServer builds the HTTP server and everything behind it.
func InitializeServer(cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	wire.Build(PipelineSet, ProvideServer)
	return &server.Server{}, nil
}
