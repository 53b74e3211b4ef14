package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Log      LogConfig
	Tracing  TracingConfig
	Dataset  DatasetConfig
	Display  DisplayConfig
	Settings SettingsConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Version     string
}

type LogConfig struct {
	Level      string
	Format     string
	OutputPath string
}

type TracingConfig struct {
	Enabled      bool
	ServiceName  string
	OTLPEndpoint string
	SampleRate   float64
}

type DatasetConfig struct {
	// Path to a YAML dataset. Empty means the built-in sample dataset.
	Path string
}

type DisplayConfig struct {
	NearExpiryWindow time.Duration
	CurrencySymbol   string
}

// SettingsConfig holds the values the settings store starts from and resets to.
type SettingsConfig struct {
	Language      string
	Theme         string
	Units         string
	Notifications bool
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "labdesk"),
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "0.0.0"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			OutputPath: getEnv("LOG_OUTPUT", "stderr"),
		},
		Tracing: TracingConfig{
			Enabled:      getEnvBool("TRACING_ENABLED", false),
			ServiceName:  getEnv("TRACING_SERVICE_NAME", "labdesk"),
			OTLPEndpoint: getEnv("OTLP_ENDPOINT", "localhost:4318"),
			SampleRate:   getEnvFloat("TRACING_SAMPLE_RATE", 0.1),
		},
		Dataset: DatasetConfig{
			Path: getEnv("DATASET_PATH", ""),
		},
		Display: DisplayConfig{
			NearExpiryWindow: getEnvDuration("NEAR_EXPIRY_WINDOW", 30*24*time.Hour),
			CurrencySymbol:   getEnv("CURRENCY_SYMBOL", "$"),
		},
		Settings: SettingsConfig{
			Language:      getEnv("DEFAULT_LANGUAGE", "en"),
			Theme:         getEnv("DEFAULT_THEME", "system"),
			Units:         getEnv("DEFAULT_UNITS", "metric"),
			Notifications: getEnvBool("NOTIFICATIONS_ENABLED", true),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	var errs []string

	if cfg.Display.NearExpiryWindow <= 0 {
		errs = append(errs, "NEAR_EXPIRY_WINDOW must be positive")
	}

	if cfg.Tracing.SampleRate < 0 || cfg.Tracing.SampleRate > 1 {
		errs = append(errs, "TRACING_SAMPLE_RATE must be between 0 and 1")
	}

	switch cfg.Settings.Language {
	case "en", "ar":
	default:
		errs = append(errs, fmt.Sprintf("DEFAULT_LANGUAGE %q is not supported", cfg.Settings.Language))
	}

	switch cfg.Settings.Theme {
	case "light", "dark", "system":
	default:
		errs = append(errs, fmt.Sprintf("DEFAULT_THEME %q is not supported", cfg.Settings.Theme))
	}

	switch cfg.Settings.Units {
	case "metric", "imperial":
	default:
		errs = append(errs, fmt.Sprintf("DEFAULT_UNITS %q is not supported", cfg.Settings.Units))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
