package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all website configuration
type Config struct {
	// Server settings
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Address     string `env:"WEBSITE_ADDRESS" envDefault:""`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	// Landing page animation timing
	Live LiveConfig

	// Server timeouts. No write timeout: live streams stay open for the
	// whole page view.
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LiveConfig holds the timing of the per-visitor page effects
type LiveConfig struct {
	CarouselInterval time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"5s"`
	CounterDelay     time.Duration `env:"COUNTER_DELAY" envDefault:"500ms"`
	CounterDuration  time.Duration `env:"COUNTER_DURATION" envDefault:"2s"`
	CounterSteps     int           `env:"COUNTER_STEPS" envDefault:"60"`

	// Manual carousel and reveal requests allowed per session. Zero disables
	// the limit.
	ActionsPerMinute int `env:"LIVE_ACTIONS_PER_MINUTE" envDefault:"120"`
	ActionBurst      int `env:"LIVE_ACTION_BURST" envDefault:"20"`
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate checks the timing values the page effects depend on
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("WEBSITE_PORT out of range: %d", c.Port))
	}
	if c.Live.CarouselInterval <= 0 {
		errs = append(errs, fmt.Errorf("CAROUSEL_INTERVAL must be positive, got %s", c.Live.CarouselInterval))
	}
	if c.Live.CounterDelay < 0 {
		errs = append(errs, fmt.Errorf("COUNTER_DELAY must not be negative, got %s", c.Live.CounterDelay))
	}
	if c.Live.CounterDuration <= 0 {
		errs = append(errs, fmt.Errorf("COUNTER_DURATION must be positive, got %s", c.Live.CounterDuration))
	}
	if c.Live.CounterSteps <= 0 {
		errs = append(errs, fmt.Errorf("COUNTER_STEPS must be positive, got %d", c.Live.CounterSteps))
	}
	if c.Live.ActionsPerMinute < 0 {
		errs = append(errs, fmt.Errorf("LIVE_ACTIONS_PER_MINUTE must not be negative, got %d", c.Live.ActionsPerMinute))
	}
	if c.Live.ActionsPerMinute > 0 && c.Live.ActionBurst <= 0 {
		errs = append(errs, fmt.Errorf("LIVE_ACTION_BURST must be positive, got %d", c.Live.ActionBurst))
	}
	return errors.Join(errs...)
}

// LoadDotEnv loads .env files if present (for local development).
// .env.local overrides .env.
func LoadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

// Parse reads the configuration from the environment
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewConfig creates the configuration for the fx graph
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("addr", cfg.Addr()),
		slog.Bool("metrics", cfg.MetricsEnabled),
	)

	return cfg, nil
}
