// Package config reads runtime settings from SCURVE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/scurve/internal/catalog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings shared by the CLI and the services.
type Config struct {
	// DBPath is the SQLite file. Empty means ~/.scurve/scurve.db.
	DBPath string
	// CatalogPath is a YAML phase catalog. Empty means the built-in catalog.
	CatalogPath string
	LogLevel    zapcore.Level
	LogUseCases bool
	// Redistribute spreads the weight of silent phases over reporting ones.
	Redistribute bool
	// Concurrency bounds parallel curve computations in portfolio status.
	Concurrency int
}

// DefaultConfig returns a Config with defaults for every setting.
func DefaultConfig() Config {
	return Config{
		LogLevel:     zapcore.WarnLevel,
		LogUseCases:  false,
		Redistribute: true,
		Concurrency:  4,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or malformed values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SCURVE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SCURVE_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("SCURVE_LOG_LEVEL"); v != "" {
		if lvl, err := zapcore.ParseLevel(v); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("SCURVE_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv("SCURVE_REDISTRIBUTE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Redistribute = b
		}
	}
	if v := os.Getenv("SCURVE_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Concurrency = n
		}
	}

	return cfg
}

// DatabasePath resolves DBPath, defaulting to ~/.scurve/scurve.db.
func (c Config) DatabasePath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".scurve", "scurve.db"), nil
}

// LoadCatalog returns the configured phase catalog.
func (c Config) LoadCatalog() (catalog.Catalog, error) {
	if c.CatalogPath == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(c.CatalogPath)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("loading catalog %s: %w", c.CatalogPath, err)
	}
	return cat, nil
}

// NewLogger builds a production zap logger writing to stderr at LogLevel.
func (c Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = c.LogLevel > zapcore.DebugLevel
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return logger, nil
}
