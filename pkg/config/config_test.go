package config

import (
	"os"
	"testing"
	"time"
)

// writeTempConfig creates a minimal configuration file and returns its path.
func writeTempConfig(t *testing.T) string {
	t.Helper()
	content := `environment: test
server:
  port: 3100
screener:
  base_url: "http://localhost:8080"
  screen_timeout: 60s
`
	f, err := os.CreateTemp("", "cfg-*.yaml")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close temp file: %v", err)
	}
	return f.Name()
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t)
	defer os.Remove(path)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Environment != "test" {
		t.Errorf("unexpected environment: %s", cfg.Environment)
	}
	if cfg.Server.Port != 3100 {
		t.Errorf("unexpected port: %d", cfg.Server.Port)
	}
	if cfg.Screener.ScreenTimeout != 60*time.Second {
		t.Errorf("unexpected screen timeout: %v", cfg.Screener.ScreenTimeout)
	}
	// omitted values fall back to defaults
	if cfg.Screener.HealthTimeout != 5*time.Second {
		t.Errorf("unexpected health timeout: %v", cfg.Screener.HealthTimeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("unexpected log level: %s", cfg.Logging.Level)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeTempConfig(t)
	defer os.Remove(path)

	t.Setenv("KOTLIN_SERVICE_URL", "http://kotlin-screener:9090")
	t.Setenv("PORT", "4000")

	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("LoadWithEnv failed: %v", err)
	}
	if cfg.Screener.BaseURL != "http://kotlin-screener:9090" {
		t.Errorf("env override not applied: %s", cfg.Screener.BaseURL)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("env override not applied: %d", cfg.Server.Port)
	}
}

func TestValidateRejectsMissingBaseURL(t *testing.T) {
	f, err := os.CreateTemp("", "cfg-*.yaml")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer os.Remove(f.Name())
	if _, err := f.WriteString("environment: test\n"); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close temp file: %v", err)
	}

	if _, err := Load(f.Name()); err == nil {
		t.Fatalf("expected validation error for missing base_url")
	}
}
