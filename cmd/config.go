package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort              string
	LogLevel              slog.Level
	Currency              string
	Locale                string
	SeedSampleData        bool
	MCPStdio              bool
	RevenueReportSchedule string
	LowStockSchedule      string
	LowStockThreshold     int
	ShutdownTimeout       time.Duration
}

// LoadConfig reads the environment after loading .env when the file exists.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var errs []error
	cfg := Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		Currency:              getEnv("CURRENCY", "BRL"),
		Locale:                getEnv("LOCALE", "pt-BR"),
		RevenueReportSchedule: getEnv("REVENUE_REPORT_SCHEDULE", "0 0 * * * *"),
		LowStockSchedule:      getEnv("LOW_STOCK_SCHEDULE", "0 */15 * * * *"),
	}
	cfg.LogLevel, errs = getEnvLevel("LOG_LEVEL", slog.LevelInfo, errs)
	cfg.SeedSampleData, errs = getEnvBool("SEED_SAMPLE_DATA", true, errs)
	cfg.MCPStdio, errs = getEnvBool("MCP_STDIO", false, errs)
	cfg.LowStockThreshold, errs = getEnvInt("LOW_STOCK_THRESHOLD", 5, errs)
	cfg.ShutdownTimeout, errs = getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second, errs)

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// getEnv distinguishes an unset variable from an empty one, so schedules can be disabled with KEY=.
func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool, errs []error) (bool, []error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, errs
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue, append(errs, fmt.Errorf("%s: %w", key, err))
	}
	return b, errs
}

func getEnvInt(key string, defaultValue int, errs []error) (int, []error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, errs
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, append(errs, fmt.Errorf("%s: %w", key, err))
	}
	return i, errs
}

func getEnvDuration(key string, defaultValue time.Duration, errs []error) (time.Duration, []error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, errs
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, append(errs, fmt.Errorf("%s: %w", key, err))
	}
	return d, errs
}

func getEnvLevel(key string, defaultValue slog.Level, errs []error) (slog.Level, []error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, errs
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return defaultValue, append(errs, fmt.Errorf("%s: %w", key, err))
	}
	return level, errs
}
