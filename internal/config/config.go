package config

import (
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"statistician/internal"
	"statistician/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Log   LogConfig
	Chart ChartConfig
	Data  DataConfig
}

// LogConfig holds diagnostic logging settings
type LogConfig struct {
	Level internal.LogLevel
}

// ChartConfig holds chart rendering and display settings
type ChartConfig struct {
	Dir        string
	WidthCM    float64
	HeightCM   float64
	OpenViewer bool
}

// DataConfig holds dataset loading settings
type DataConfig struct {
	Delimiter rune
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	dataConfig, err := loadDataConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load data configuration")
	}

	config := &Config{
		Log:   *loadLogConfig(),
		Chart: *loadChartConfig(),
		Data:  *dataConfig,
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadLogConfig() *LogConfig {
	return &LogConfig{
		Level: internal.ParseLogLevel(os.Getenv("LOG_LEVEL"), internal.LogLevelWarn),
	}
}

func loadChartConfig() *ChartConfig {
	return &ChartConfig{
		Dir:        getEnvOrDefault("CHART_DIR", filepath.Join(os.TempDir(), "statistician")),
		WidthCM:    getEnvFloatOrDefault("CHART_WIDTH_CM", 24),
		HeightCM:   getEnvFloatOrDefault("CHART_HEIGHT_CM", 14),
		OpenViewer: getEnvBoolOrDefault("CHART_OPEN_VIEWER", true),
	}
}

func loadDataConfig() (*DataConfig, error) {
	delim := getEnvOrDefault("CSV_DELIMITER", ",")
	if utf8.RuneCountInString(delim) != 1 {
		return nil, errors.ConfigInvalid("CSV_DELIMITER must be a single character")
	}
	r, _ := utf8.DecodeRuneInString(delim)
	return &DataConfig{Delimiter: r}, nil
}

func validateConfig(config *Config) error {
	if config.Chart.WidthCM <= 0 || config.Chart.HeightCM <= 0 {
		return errors.ConfigInvalid("chart dimensions must be positive")
	}
	if config.Chart.Dir == "" {
		return errors.ConfigInvalid("chart directory is required")
	}
	switch config.Data.Delimiter {
	case '"', '\r', '\n', utf8.RuneError:
		return errors.ConfigInvalid("CSV_DELIMITER is not a valid field separator")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
