// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// birthday keeper. It aggregates all sub-configurations and is populated by
// merging values from command-line flags, environment variables, an
// optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the key-value backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the log sink and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported at startup.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the key-value backends.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the redis connection settings. A non-empty Redis.Address
	// selects redis unless DB.DSN names another backend by scheme.
	Redis Redis `envPrefix:"REDIS_"`

	// Timeout bounds every single storage call (e.g. "5s").
	// Env: STORAGE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// DB holds connection settings for the SQL and file backends.
type DB struct {
	// DSN selects and configures the backend:
	//   - "memory"                         in-process map, nothing persisted
	//   - "file://<path>"                  JSON document on disk
	//   - "postgres://..." / "postgresql://..."
	//   - "redis://..."
	//   - anything else                    SQLite database file path
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings for the redis backend.
type Redis struct {
	// Address in "host:port" format.
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`

	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the logical redis database number.
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Log holds logger settings. The terminal UI owns stdout, so logs always go
// to a file.
type Log struct {
	// File is the path of the log file.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults applied to fields left empty by every other source.
const (
	DefaultDSN            = "birthday-keeper.db"
	DefaultStorageTimeout = 5 * time.Second
	DefaultLogFile        = "birthday-keeper.log"
	DefaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB:      DB{DSN: DefaultDSN},
			Timeout: DefaultStorageTimeout,
		},
		Log: Log{
			File:  DefaultLogFile,
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
