package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton for components that cannot take injected config (cron jobs, logging middleware)
var globalConfig *Config

// Config holds all environment backed configuration for analysis-api.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"9091"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// AI provider credentials
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	ClaudeAPIKey string `env:"CLAUDE_API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GrokAPIKey   string `env:"GROK_API_KEY"`

	// AI provider endpoint overrides (defaults target the public APIs)
	OpenAIEndpoint string `env:"OPENAI_ENDPOINT"`
	ClaudeEndpoint string `env:"CLAUDE_ENDPOINT"`
	GeminiEndpoint string `env:"GEMINI_ENDPOINT"`
	GrokEndpoint   string `env:"GROK_ENDPOINT"`

	// Orchestration
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"8s"`

	// Provider health monitoring
	HealthWindow                  time.Duration `env:"HEALTH_WINDOW" envDefault:"24h"`
	HealthSnapshotEnabled         bool          `env:"HEALTH_SNAPSHOT_ENABLED" envDefault:"true"`
	HealthSnapshotIntervalMinutes int           `env:"HEALTH_SNAPSHOT_INTERVAL_MINUTES" envDefault:"1"`

	// Observability / Logging
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string        `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"analysis-api"`
	ServiceNamespace string        `env:"SERVICE_NAMESPACE" envDefault:"magna"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate        bool    `env:"AUTO_MIGRATE" envDefault:"true"`
	RateLimitPerMinute float64 `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.ProviderTimeout <= 0 {
		return nil, fmt.Errorf("PROVIDER_TIMEOUT must be positive, got %s", cfg.ProviderTimeout)
	}
	if cfg.HealthWindow <= 0 {
		return nil, fmt.Errorf("HEALTH_WINDOW must be positive, got %s", cfg.HealthWindow)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalConfig = cfg

	return cfg, nil
}

// GetGlobal returns the global config instance for components outside the DI graph.
func GetGlobal() *Config {
	return globalConfig
}

// GetEnvReloadedAt returns the time the environment was last loaded.
func GetEnvReloadedAt() time.Time {
	if globalConfig == nil {
		return time.Time{}
	}
	return globalConfig.EnvReloadedAt
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
