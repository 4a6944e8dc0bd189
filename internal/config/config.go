// Package config handles configuration loading and management
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	OutputDir string
	DPI       int
	LogLevel  string
}

// Load reads configuration from environment variables and .env file.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		OutputDir: getEnv("K6VIZ_OUTPUT_DIR", DefaultOutputDir),
		LogLevel:  getEnv("LOG_LEVEL", DefaultLogLevel),
	}

	dpi, err := strconv.Atoi(getEnv("K6VIZ_DPI", strconv.Itoa(DefaultDPI)))
	if err != nil {
		return nil, fmt.Errorf("invalid K6VIZ_DPI: %w", err)
	}

	if dpi <= 0 {
		return nil, fmt.Errorf("invalid K6VIZ_DPI: %d must be positive", dpi)
	}
	cfg.DPI = dpi

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) String() string {
	return fmt.Sprintf(`Current Configuration:
======================
Output Directory: %s
DPI:              %d
Log Level:        %s`,
		c.OutputDir,
		c.DPI,
		c.LogLevel,
	)
}
