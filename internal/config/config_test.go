package config

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 4002, cfg.Port)
	assert.Equal(t, ":4002", cfg.Addr())
	assert.Equal(t, "local", cfg.Environment)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.IsProduction())

	assert.Equal(t, 5*time.Second, cfg.Live.CarouselInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Live.CounterDelay)
	assert.Equal(t, 2*time.Second, cfg.Live.CounterDuration)
	assert.Equal(t, 60, cfg.Live.CounterSteps)
	assert.Equal(t, 120, cfg.Live.ActionsPerMinute)
	assert.Equal(t, 20, cfg.Live.ActionBurst)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestParse_FromEnv(t *testing.T) {
	t.Setenv("WEBSITE_PORT", "8080")
	t.Setenv("WEBSITE_ADDRESS", "127.0.0.1")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("CAROUSEL_INTERVAL", "1s")
	t.Setenv("COUNTER_STEPS", "10")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, time.Second, cfg.Live.CarouselInterval)
	assert.Equal(t, 10, cfg.Live.CounterSteps)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unparseable duration", "CAROUSEL_INTERVAL", "soon"},
		{"zero interval", "CAROUSEL_INTERVAL", "0s"},
		{"zero steps", "COUNTER_STEPS", "0"},
		{"negative delay", "COUNTER_DELAY", "-1s"},
		{"port out of range", "WEBSITE_PORT", "70000"},
		{"negative action rate", "LIVE_ACTIONS_PER_MINUTE", "-5"},
		{"zero burst with a rate", "LIVE_ACTION_BURST", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestNewConfig(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg, err := NewConfig(log)
	require.NoError(t, err)
	assert.Equal(t, 4002, cfg.Port)
}
