package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/prasetyowira/qrgen/constant"
)

// Config holds the application settings read from the environment
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	Environment string `env:"APP_ENV" envDefault:"production"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`

	RasterLevel      string `env:"QR_RASTER_LEVEL" envDefault:"low"`
	RasterModuleSize int    `env:"QR_RASTER_MODULE_SIZE" envDefault:"10"`
	VectorLevel      string `env:"QR_VECTOR_LEVEL" envDefault:"low"`
	VectorModuleSize int    `env:"QR_VECTOR_MODULE_SIZE" envDefault:"1"`

	PreviewWidth    int   `env:"PREVIEW_WIDTH" envDefault:"400"`
	MaxRequestBytes int64 `env:"MAX_REQUEST_BYTES" envDefault:"65536"`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads an optional .env file and parses the environment into a Config
func LoadConfig() (Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsProduction reports whether the service runs with production logging
func (c Config) IsProduction() bool {
	return !strings.EqualFold(c.Environment, constant.EnvDevelopment)
}

// Validate checks values env tags cannot express
func (c Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.RasterModuleSize <= 0 {
		errs = append(errs, fmt.Errorf("QR_RASTER_MODULE_SIZE must be positive: %d", c.RasterModuleSize))
	}
	if c.VectorModuleSize <= 0 {
		errs = append(errs, fmt.Errorf("QR_VECTOR_MODULE_SIZE must be positive: %d", c.VectorModuleSize))
	}
	if c.PreviewWidth <= 0 {
		errs = append(errs, fmt.Errorf("PREVIEW_WIDTH must be positive: %d", c.PreviewWidth))
	}
	if c.MaxRequestBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_REQUEST_BYTES must be positive: %d", c.MaxRequestBytes))
	}
	return errors.Join(errs...)
}
