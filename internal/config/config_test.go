package config

import (
	"os"
	"testing"
	"time"
)

var allEnvKeys = []string{
	"PORT", "OUTPUT_DIR", "SCRATCH_DIR",
	"GEMINI_MODEL", "GEMINI_EDIT_MODEL",
	"MAX_UPLOAD_BYTES", "SCRATCH_TTL", "SWEEP_INTERVAL", "CORS_ORIGIN",
	"MYSQL_HOST", "MYSQL_PORT", "MYSQL_DB", "MYSQL_USER", "MYSQL_PASSWORD", "MYSQL_EBOOK_TABLE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allEnvKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.OutputDir != "output" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "output")
	}
	if cfg.ScratchDir != "temp_images" {
		t.Errorf("ScratchDir = %q, want %q", cfg.ScratchDir, "temp_images")
	}
	if cfg.DefaultModel != "gemini-2.5-pro" {
		t.Errorf("DefaultModel = %q, want %q", cfg.DefaultModel, "gemini-2.5-pro")
	}
	if cfg.DefaultEditModel != "" {
		t.Errorf("DefaultEditModel = %q, want empty", cfg.DefaultEditModel)
	}
	if cfg.MaxUploadBytes != 32<<20 {
		t.Errorf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, int64(32<<20))
	}
	if cfg.ScratchTTL != time.Hour {
		t.Errorf("ScratchTTL = %v, want %v", cfg.ScratchTTL, time.Hour)
	}
	if cfg.CORSOrigin != "*" {
		t.Errorf("CORSOrigin = %q, want %q", cfg.CORSOrigin, "*")
	}
	if cfg.MySQL.Port != 3306 {
		t.Errorf("MySQL.Port = %d, want 3306", cfg.MySQL.Port)
	}
	if cfg.MySQL.Table != "ebooks" {
		t.Errorf("MySQL.Table = %q, want %q", cfg.MySQL.Table, "ebooks")
	}
	if cfg.MySQL.Enabled() {
		t.Error("MySQL.Enabled() = true with no credentials set")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("GEMINI_EDIT_MODEL", "gemini-2.5-pro")
	t.Setenv("SCRATCH_TTL", "30m")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("MYSQL_PORT", "3307")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9999")
	}
	if cfg.DefaultModel != "gemini-2.0-flash" {
		t.Errorf("DefaultModel = %q, want %q", cfg.DefaultModel, "gemini-2.0-flash")
	}
	if cfg.DefaultEditModel != "gemini-2.5-pro" {
		t.Errorf("DefaultEditModel = %q, want %q", cfg.DefaultEditModel, "gemini-2.5-pro")
	}
	if cfg.ScratchTTL != 30*time.Minute {
		t.Errorf("ScratchTTL = %v, want %v", cfg.ScratchTTL, 30*time.Minute)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Errorf("MaxUploadBytes = %d, want 1024", cfg.MaxUploadBytes)
	}
	if cfg.MySQL.Port != 3307 {
		t.Errorf("MySQL.Port = %d, want 3307", cfg.MySQL.Port)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCRATCH_TTL", "not-a-duration")
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")
	t.Setenv("MYSQL_PORT", "not-a-port")

	cfg := Load()

	if cfg.ScratchTTL != time.Hour {
		t.Errorf("ScratchTTL = %v, want fallback %v", cfg.ScratchTTL, time.Hour)
	}
	if cfg.MaxUploadBytes != 32<<20 {
		t.Errorf("MaxUploadBytes = %d, want fallback %d", cfg.MaxUploadBytes, int64(32<<20))
	}
	if cfg.MySQL.Port != 3306 {
		t.Errorf("MySQL.Port = %d, want fallback 3306", cfg.MySQL.Port)
	}
}

func TestMySQLConfig_Enabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  MySQLConfig
		want bool
	}{
		{"all set", MySQLConfig{Host: "db", Database: "ebooks", User: "u", Password: "p"}, true},
		{"missing host", MySQLConfig{Database: "ebooks", User: "u", Password: "p"}, false},
		{"missing database", MySQLConfig{Host: "db", User: "u", Password: "p"}, false},
		{"missing user", MySQLConfig{Host: "db", Database: "ebooks", Password: "p"}, false},
		{"missing password", MySQLConfig{Host: "db", Database: "ebooks", User: "u"}, false},
		{"empty", MySQLConfig{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}
