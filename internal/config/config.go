package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Model    Model
	Postgres Postgres
}

type App struct {
	Name      string     `env:"APP_NAME" envDefault:"estate-price"`
	Version   string     `env:"APP_VERSION" envDefault:"dev"`
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen       int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
	LogMaskFields        []string      `env:"HTTP_LOG_MASK_FIELDS" envSeparator:","`
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

type Model struct {
	Path             string `env:"MODEL_PATH" envDefault:"models/xgb_model.json"`
	PostalPricesPath string `env:"POSTAL_PRICES_PATH" envDefault:"data/postal_code_prices.json"`
	// Reject records lacking a model feature instead of scoring them with 0.
	StrictFeatures bool `env:"MODEL_STRICT_FEATURES" envDefault:"false"`
	// Reject unknown categories instead of encoding them as the first entry.
	StrictCategories bool `env:"MODEL_STRICT_CATEGORIES" envDefault:"false"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if config.App.LogFormat != "text" && config.App.LogFormat != "json" {
		return Config{}, fmt.Errorf("config.Load: LOG_FORMAT must be text or json, got %q", config.App.LogFormat)
	}

	return config, nil
}
