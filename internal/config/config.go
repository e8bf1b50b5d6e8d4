// Package config provides centralized configuration for the ebookforge server.
// All configurable values are loaded from environment variables with sensible
// defaults. The snapshot is built once at startup and passed into the pipeline;
// request handling never reads the environment directly.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all server configuration values.
type Config struct {
	// Port is the HTTP server listen port.
	Port string

	// OutputDir is the root directory for rendered PDFs. Caller-supplied
	// output paths must resolve inside it.
	OutputDir string

	// ScratchDir holds transient cover images.
	ScratchDir string

	// DefaultModel is the Gemini model for the authoring pass.
	DefaultModel string

	// DefaultEditModel is the Gemini model for the editorial pass.
	// Empty means "same as the authoring model".
	DefaultEditModel string

	// MaxUploadBytes caps the total multipart request size.
	MaxUploadBytes int64

	// ScratchTTL is how long transient cover images are kept before the
	// janitor removes them.
	ScratchTTL time.Duration

	// SweepInterval is the janitor polling interval.
	SweepInterval time.Duration

	// CORSOrigin is the allowed CORS origin. Defaults to "*".
	CORSOrigin string

	// MySQL configures the optional archive store.
	MySQL MySQLConfig
}

// MySQLConfig holds connection settings for the archive database.
// Archiving is disabled unless every credential field is present.
type MySQLConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	Table    string
}

// Enabled reports whether the archive store is fully configured.
func (m MySQLConfig) Enabled() bool {
	return m.Host != "" && m.Database != "" && m.User != "" && m.Password != ""
}

// Load reads configuration from environment variables, applying defaults.
func Load() Config {
	return Config{
		Port:             envOr("PORT", "8080"),
		OutputDir:        envOr("OUTPUT_DIR", "output"),
		ScratchDir:       envOr("SCRATCH_DIR", "temp_images"),
		DefaultModel:     envOr("GEMINI_MODEL", "gemini-2.5-pro"),
		DefaultEditModel: os.Getenv("GEMINI_EDIT_MODEL"),
		MaxUploadBytes:   envInt64("MAX_UPLOAD_BYTES", 32<<20),
		ScratchTTL:       envDuration("SCRATCH_TTL", time.Hour),
		SweepInterval:    envDuration("SWEEP_INTERVAL", 10*time.Minute),
		CORSOrigin:       envOr("CORS_ORIGIN", "*"),
		MySQL: MySQLConfig{
			Host:     os.Getenv("MYSQL_HOST"),
			Port:     envInt("MYSQL_PORT", 3306),
			Database: os.Getenv("MYSQL_DB"),
			User:     os.Getenv("MYSQL_USER"),
			Password: os.Getenv("MYSQL_PASSWORD"),
			Table:    envOr("MYSQL_EBOOK_TABLE", "ebooks"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
