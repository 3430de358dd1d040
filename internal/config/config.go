package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"uniprofile/pkg/validator"
)

type Config struct {
	Env   string      `json:"env"`
	Http  HttpConfig  `json:"http"`
	Mongo MongoConfig `json:"mongo"`
}

type HttpConfig struct {
	Port            string        `json:"port" validate:"required,port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type MongoConfig struct {
	URL          string        `json:"url,omitempty" validate:"omitempty,mongouri"`
	Database     string        `json:"database"`
	ProbeTimeout time.Duration `json:"probe_timeout"`
}

func Load() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("PORT", "8000"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Mongo: MongoConfig{
			URL:          getEnv("DATABASE_URL", ""),
			Database:     getEnv("DATABASE_NAME", ""),
			ProbeTimeout: getEnvDuration("DATABASE_PROBE_TIMEOUT", 5*time.Second),
		},
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.Bool("database_configured", cfg.Mongo.URL != ""))

	return cfg, nil
}

// DatabaseConfigured reports whether both Mongo settings are present.
// Absence only degrades the diagnostics report, never startup.
func (c *Config) DatabaseConfigured() bool {
	return c.Mongo.URL != "" && c.Mongo.Database != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
