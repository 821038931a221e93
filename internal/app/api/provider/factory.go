package provider

import (
	"go.uber.org/zap"

	"mp3-transcriber/internal/app/api"
	openaiclient "mp3-transcriber/internal/app/api/openai"
	"mp3-transcriber/internal/app/api/openai/whisper"
	"mp3-transcriber/internal/app/api/whisper_cpp"
	"mp3-transcriber/internal/app/api/whisper_server"
	apperrors "mp3-transcriber/internal/app/errors"
	"mp3-transcriber/internal/config"
)

const (
	WhisperServer = "whisper_server"
	WhisperCpp    = "whisper_cpp"
	OpenAI        = "openai"
)

// AvailableProviders lists the provider types New understands.
func AvailableProviders() []string {
	return []string{WhisperServer, WhisperCpp, OpenAI}
}

// New creates the transcriber selected by cfg.Provider.
func New(cfg config.TranscriberConfig, logger *zap.Logger) (api.Transcriber, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("provider", cfg.Provider))

	switch cfg.Provider {
	case WhisperServer, "":
		logger.Info("using whisper-server", zap.String("base_url", cfg.WhisperServer.BaseURL))
		return whisper_server.NewWhisperServerProvider(whisper_server.WhisperServerConfig{
			BaseURL:     cfg.WhisperServer.BaseURL,
			Timeout:     cfg.WhisperServer.Timeout,
			Language:    cfg.Language,
			Temperature: cfg.WhisperServer.Temperature,
		}), nil
	case WhisperCpp:
		if cfg.WhisperCpp.BinaryPath == "" || cfg.WhisperCpp.ModelPath == "" {
			return nil, apperrors.Mark(apperrors.RequiredField("whisper_cpp binary and model paths"), apperrors.ErrInvalidConfig)
		}
		logger.Info("using local whisper.cpp", zap.String("model", cfg.WhisperCpp.ModelPath))
		return whisper_cpp.NewLocalTranscriber(
			cfg.WhisperCpp.BinaryPath,
			cfg.WhisperCpp.ModelPath,
			cfg.Language,
			cfg.WhisperCpp.Prompt,
			logger,
		), nil
	case OpenAI:
		if cfg.OpenAI.APIKey == "" {
			return nil, apperrors.ErrMissingAPIKey
		}
		logger.Info("using OpenAI transcription", zap.String("model", cfg.OpenAI.Model))
		client := openaiclient.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL)
		return whisper.NewRemoteTranscriber(client, cfg.OpenAI.Model, cfg.Language), nil
	default:
		return nil, apperrors.Mark(apperrors.InvalidField("transcriber.provider", cfg.Provider), apperrors.ErrInvalidConfig)
	}
}
