package config

import (
	"os"

	"github.com/joho/godotenv"

	apperrors "mp3-transcriber/internal/app/errors"
)

var envPaths = []string{
	".env",
	".env.local",
}

// LoadEnv loads the first .env file found in the working directory. Variables
// already present in the environment win. It returns the loaded path, or ""
// when no file exists.
func LoadEnv() (string, error) {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return "", apperrors.Wrapf(err, "error loading %s file", envPath)
		}
		return envPath, nil
	}
	return "", nil
}
