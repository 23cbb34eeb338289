package cmd

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	defaultHTTPPort             = "8080"
	defaultDBSslMode            = "disable"
	defaultBucketMappingVersion = "v1"
)

// Config is read from the environment by cmd/app; empty values fall back to
// the defaults applied by WithDefaults.
type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	BucketMappingVersion string
	DefaultCurrency      string
	ReportSchedule       string
	LogLevel             string
}

func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = defaultHTTPPort
	}
	if c.DBSslMode == "" {
		c.DBSslMode = defaultDBSslMode
	}
	if c.BucketMappingVersion == "" {
		c.BucketMappingVersion = defaultBucketMappingVersion
	}
	return c
}

// DSN builds the key/value connection string understood by both lib/pq and
// the pgx based gorm driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel parses LOG_LEVEL ("debug", "info", "warn", "error"). Empty means info.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(c.LogLevel) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
