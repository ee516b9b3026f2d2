package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/GreenGauge-Analytics/Scorecard/internal/esg"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Model    ModelConfig    `yaml:"model"`
	Renderer RendererConfig `yaml:"renderer"`
	Events   EventsConfig   `yaml:"events"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

type ModelConfig struct {
	Path string `yaml:"path"`
}

type RendererConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type ScoringConfig struct {
	Profiles WeightProfiles `yaml:"profiles"`
}

// WeightProfiles mirrors esg.WeightProfiles in yaml form so deployments can
// tune the pillar weighting per industry class.
type WeightProfiles struct {
	Default    Weights `yaml:"default"`
	HighImpact Weights `yaml:"high_impact"`
	Services   Weights `yaml:"services"`
}

type Weights struct {
	Environmental float64 `yaml:"environmental"`
	Social        float64 `yaml:"social"`
	Governance    float64 `yaml:"governance"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// EngineProfiles converts the yaml weight table into the engine's form.
func (c *Config) EngineProfiles() esg.WeightProfiles {
	conv := func(w Weights) esg.WeightSet {
		return esg.WeightSet{E: w.Environmental, S: w.Social, G: w.Governance}
	}
	return esg.WeightProfiles{
		Default:    conv(c.Scoring.Profiles.Default),
		HighImpact: conv(c.Scoring.Profiles.HighImpact),
		Services:   conv(c.Scoring.Profiles.Services),
	}
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Model: ModelConfig{
			Path: "esg_benchmark_model.json",
		},
		Events: EventsConfig{
			URL: "nats://localhost:4222",
		},
		Scoring: ScoringConfig{
			Profiles: WeightProfiles{
				Default:    Weights{Environmental: 0.4, Social: 0.3, Governance: 0.3},
				HighImpact: Weights{Environmental: 0.6, Social: 0.2, Governance: 0.2},
				Services:   Weights{Environmental: 0.2, Social: 0.5, Governance: 0.3},
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.EngineProfiles().Validate(); err != nil {
		return nil, fmt.Errorf("scoring profiles: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SCORECARD_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("SCORECARD_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("SCORECARD_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("SCORECARD_MODEL_PATH"); v != "" {
		cfg.Model.Path = v
	}
	if v := os.Getenv("SCORECARD_RENDERER_URL"); v != "" {
		cfg.Renderer.URL = v
	}
	if v := os.Getenv("SCORECARD_RENDERER_TOKEN"); v != "" {
		cfg.Renderer.Token = v
	}
	if v := os.Getenv("SCORECARD_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("SCORECARD_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SCORECARD_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
