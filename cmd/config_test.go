package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"ecommerce/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := cmd.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.Equal(t, "BRL", cfg.Currency)
		assert.True(t, cfg.SeedSampleData)
		assert.False(t, cfg.MCPStdio)
		assert.Equal(t, 5, cfg.LowStockThreshold)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("MCP_STDIO", "true")
		t.Setenv("LOW_STOCK_THRESHOLD", "3")
		t.Setenv("LOW_STOCK_SCHEDULE", "")
		t.Setenv("SHUTDOWN_TIMEOUT", "2s")

		cfg, err := cmd.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.True(t, cfg.MCPStdio)
		assert.Equal(t, 3, cfg.LowStockThreshold)
		assert.Empty(t, cfg.LowStockSchedule)
		assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("invalid values are reported together", func(t *testing.T) {
		t.Setenv("SEED_SAMPLE_DATA", "maybe")
		t.Setenv("LOW_STOCK_THRESHOLD", "few")

		_, err := cmd.LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "SEED_SAMPLE_DATA")
		assert.Contains(t, err.Error(), "LOW_STOCK_THRESHOLD")
	})
}
