package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SCORECARD_PORT", "SCORECARD_METRICS_PORT", "SCORECARD_ADMIN_TOKEN",
		"SCORECARD_MODEL_PATH", "SCORECARD_RENDERER_URL", "SCORECARD_RENDERER_TOKEN",
		"SCORECARD_EVENTS_URL", "SCORECARD_LOG_LEVEL", "SCORECARD_LOG_FORMAT",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Model.Path != "esg_benchmark_model.json" {
		t.Errorf("expected default model path, got %s", cfg.Model.Path)
	}
	if cfg.Events.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Events.URL)
	}
	if cfg.Renderer.URL != "" {
		t.Errorf("expected renderer off by default, got %s", cfg.Renderer.URL)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging defaults: %+v", cfg.Logging)
	}

	p := cfg.Scoring.Profiles
	if p.HighImpact != (Weights{Environmental: 0.6, Social: 0.2, Governance: 0.2}) {
		t.Errorf("high impact weights: %+v", p.HighImpact)
	}
	if p.Services != (Weights{Environmental: 0.2, Social: 0.5, Governance: 0.3}) {
		t.Errorf("services weights: %+v", p.Services)
	}
	if p.Default != (Weights{Environmental: 0.4, Social: 0.3, Governance: 0.3}) {
		t.Errorf("default weights: %+v", p.Default)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCORECARD_PORT", "9100")
	t.Setenv("SCORECARD_MODEL_PATH", "/models/esg.json")
	t.Setenv("SCORECARD_RENDERER_URL", "http://composer:8080")
	t.Setenv("SCORECARD_EVENTS_URL", "")
	t.Setenv("SCORECARD_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Model.Path != "/models/esg.json" {
		t.Errorf("expected overridden model path, got %s", cfg.Model.Path)
	}
	if cfg.Renderer.URL != "http://composer:8080" {
		t.Errorf("expected renderer URL, got %s", cfg.Renderer.URL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: 9200
scoring:
  profiles:
    services:
      environmental: 0.1
      social: 0.6
      governance: 0.3
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9200 {
		t.Errorf("expected port 9200, got %d", cfg.Server.Port)
	}
	if cfg.Scoring.Profiles.Services.Social != 0.6 {
		t.Errorf("services social weight: got %f", cfg.Scoring.Profiles.Services.Social)
	}
	// Untouched sections keep their defaults.
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("metrics port default lost: %d", cfg.Server.MetricsPort)
	}
}

func TestLoadRejectsInvalidProfiles(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
scoring:
  profiles:
    default:
      environmental: -0.4
      social: 0.3
      governance: 0.3
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative weight")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
