package config

import (
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	apperrors "mp3-transcriber/internal/app/errors"
	"mp3-transcriber/internal/app/intake"
)

// Config is the full application configuration. Values come from an optional
// YAML file, overridden by environment variables.
type Config struct {
	Environment string            `yaml:"environment" env:"A2T_ENV" env-default:"development" validate:"oneof=development production test"`
	LogLevel    string            `yaml:"log_level" env:"A2T_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	TempDir     string            `yaml:"temp_dir" env:"A2T_TEMP_DIR"`
	Intake      IntakeConfig      `yaml:"intake"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Export      ExportConfig      `yaml:"export"`
	Server      ServerConfig      `yaml:"server"`
}

type IntakeConfig struct {
	AllowedExtensions []string `yaml:"allowed_extensions" env:"A2T_ALLOWED_EXTENSIONS" env-separator:"," env-default:".mp3"`
	MaxFileMB         int      `yaml:"max_file_mb" env:"A2T_MAX_FILE_MB" env-default:"50"`
	AllowedMIMETypes  []string `yaml:"allowed_mime_types" env:"A2T_ALLOWED_MIME_TYPES" env-separator:"," env-default:"audio/mpeg"`
	MessageLanguage   string   `yaml:"message_language" env:"A2T_MESSAGES" env-default:"en" validate:"oneof=en ja"`
}

// Policy converts the intake section to a validator policy.
func (c IntakeConfig) Policy() intake.Policy {
	return intake.Policy{
		AllowedExtensions: c.AllowedExtensions,
		MaxFileMB:         c.MaxFileMB,
		AllowedMIMETypes:  c.AllowedMIMETypes,
		Language:          c.MessageLanguage,
	}
}

type TranscriberConfig struct {
	Provider      string              `yaml:"provider" env:"A2T_TRANSCRIBER" env-default:"whisper_server" validate:"oneof=whisper_server whisper_cpp openai"`
	Language      string              `yaml:"language" env:"A2T_LANGUAGE"`
	WhisperServer WhisperServerConfig `yaml:"whisper_server"`
	WhisperCpp    WhisperCppConfig    `yaml:"whisper_cpp"`
	OpenAI        OpenAIConfig        `yaml:"openai"`
}

type WhisperServerConfig struct {
	BaseURL     string        `yaml:"base_url" env:"WHISPER_SERVER_URL" env-default:"http://127.0.0.1:8080" validate:"omitempty,url"`
	Timeout     time.Duration `yaml:"timeout" env:"WHISPER_SERVER_TIMEOUT" env-default:"10m"`
	Temperature float64       `yaml:"temperature" env:"WHISPER_SERVER_TEMPERATURE" validate:"gte=0,lte=1"`
}

type WhisperCppConfig struct {
	BinaryPath string `yaml:"binary_path" env:"WHISPER_CPP_BINARY"`
	ModelPath  string `yaml:"model_path" env:"WHISPER_CPP_MODEL"`
	Prompt     string `yaml:"prompt" env:"WHISPER_CPP_PROMPT"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key" env:"OPENAI_API_KEY"`
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL" validate:"omitempty,url"`
	Model   string `yaml:"model" env:"OPENAI_TRANSCRIPTION_MODEL" env-default:"whisper-1"`
}

type ExportConfig struct {
	DefaultFormat  string `yaml:"default_format" env:"A2T_EXPORT_FORMAT" env-default:"csv" validate:"oneof=csv zip xlsx"`
	HeaderLanguage string `yaml:"header_language" env:"A2T_EXPORT_HEADERS" env-default:"en" validate:"oneof=en ja"`
}

// ServerConfig holds the HTTP front-end settings. CSRF protection and usage
// telemetry are concerns of whatever serves the browser UI and are not
// handled here.
type ServerConfig struct {
	Host            string        `yaml:"host" env:"A2T_HOST" env-default:"127.0.0.1"`
	Port            string        `yaml:"port" env:"A2T_PORT" env-default:"8501" validate:"required,numeric"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"A2T_READ_TIMEOUT" env-default:"60s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"A2T_WRITE_TIMEOUT" env-default:"30m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"A2T_IDLE_TIMEOUT" env-default:"120s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"A2T_SHUTDOWN_TIMEOUT" env-default:"30s"`
	MaxRequestMB    int           `yaml:"max_request_mb" env:"A2T_MAX_REQUEST_MB" env-default:"500" validate:"gt=0"`
	AllowOrigins    []string      `yaml:"allow_origins" env:"A2T_ALLOW_ORIGINS" env-separator:","`
}

// Load reads configuration from path (if not empty) and the environment,
// then validates it.
func Load(path string) (*Config, error) {
	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and provider-specific requirements.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return apperrors.Mark(err, apperrors.ErrInvalidConfig)
	}
	if _, err := intake.NewValidator(c.Intake.Policy()); err != nil {
		return apperrors.Mark(err, apperrors.ErrInvalidConfig)
	}

	switch c.Transcriber.Provider {
	case "whisper_server":
		if c.Transcriber.WhisperServer.BaseURL == "" {
			return apperrors.Mark(apperrors.RequiredField("transcriber.whisper_server.base_url"), apperrors.ErrInvalidConfig)
		}
		if err := ValidateTimeout(c.Transcriber.WhisperServer.Timeout, "whisper_server"); err != nil {
			return apperrors.Mark(err, apperrors.ErrInvalidConfig)
		}
	case "whisper_cpp":
		if c.Transcriber.WhisperCpp.BinaryPath == "" {
			return apperrors.Mark(apperrors.RequiredField("WHISPER_CPP_BINARY"), apperrors.ErrInvalidConfig)
		}
		if c.Transcriber.WhisperCpp.ModelPath == "" {
			return apperrors.Mark(apperrors.RequiredField("WHISPER_CPP_MODEL"), apperrors.ErrInvalidConfig)
		}
	case "openai":
		if err := ValidateAPIKey(c.Transcriber.OpenAI.APIKey); err != nil {
			return apperrors.Mark(err, apperrors.ErrMissingAPIKey)
		}
	}
	return nil
}

// MaxRequestBytes is the request body cap for the HTTP front-end.
func (s ServerConfig) MaxRequestBytes() int64 {
	return int64(s.MaxRequestMB) * 1024 * 1024
}

// Dump writes the configuration as YAML with secrets masked.
func (c *Config) Dump(w io.Writer) error {
	redacted := *c
	if redacted.Transcriber.OpenAI.APIKey != "" {
		redacted.Transcriber.OpenAI.APIKey = "********"
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&redacted); err != nil {
		return apperrors.Wrap(err, "failed to encode configuration")
	}
	return enc.Close()
}
