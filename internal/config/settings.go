package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile = ".env"
	envLogLevel    = "SEKFMT_LOG_LEVEL"
	envOutput      = "SEKFMT_OUTPUT"
)

// Settings holds CLI settings. They never affect the formatter's locale or
// currency, which are fixed.
type Settings struct {
	LogLevel string
	Output   string
}

// LoadSettings reads settings from the environment after loading envFiles
// with godotenv; existing variables win. Without envFiles, ./.env is loaded
// when present. Explicitly named files must exist.
func LoadSettings(envFiles ...string) (*Settings, error) {
	if len(envFiles) == 0 {
		if _, err := os.Stat(defaultEnvFile); err == nil {
			envFiles = []string{defaultEnvFile}
		}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	return &Settings{
		LogLevel: getEnv(envLogLevel, "info"),
		Output:   getEnv(envOutput, "console"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
