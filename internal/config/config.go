package config

import (
	"fmt"
	"os"
	"strings"
)

// Config contains runtime settings for the Employeah server.
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080

	// DatasetPath optionally overrides the embedded dataset with a JSON
	// file of the same shape (see cmd/export).
	DatasetPath string

	Sheets struct {
		// CredentialsPath points at a Google service-account JSON file.
		// Empty disables the report export tool.
		CredentialsPath string
	}
}

// Load populates config from environment variables.
func Load() (Config, error) {
	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.DatasetPath = os.Getenv("DATASET_PATH")
	cfg.Sheets.CredentialsPath = os.Getenv("SHEETS_CREDENTIALS_PATH")

	var invalid []string

	if cfg.DatasetPath != "" {
		if _, err := os.Stat(cfg.DatasetPath); err != nil {
			invalid = append(invalid, fmt.Sprintf("DATASET_PATH (%v)", err))
		}
	}

	if cfg.Sheets.CredentialsPath != "" {
		if _, err := os.Stat(cfg.Sheets.CredentialsPath); err != nil {
			invalid = append(invalid, fmt.Sprintf("SHEETS_CREDENTIALS_PATH (%v)", err))
		}
	}

	if len(invalid) > 0 {
		return cfg, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
