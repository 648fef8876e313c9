// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the style server. It is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as the version and log level.
	App App `envPrefix:"APP_"`

	// Style holds how style documents are loaded and applied.
	Style Style `envPrefix:"STYLE_"`

	// Storage holds the style library database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote style server endpoint used by stylectl.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Style holds how style documents are loaded and applied.
type Style struct {
	// Paths are style files loaded at startup, in application order.
	// Env: STYLE_PATHS (comma separated)
	Paths []string `env:"PATHS" envSeparator:","`

	// Builtin names an embedded style applied before Paths.
	// Env: STYLE_BUILTIN
	Builtin string `env:"BUILTIN"`

	// UnknownKeys is the unknown key policy: "warn", "ignore" or "error".
	// Env: STYLE_UNKNOWN_KEYS
	UnknownKeys string `env:"UNKNOWN_KEYS"`

	// Duplicates is the duplicate key policy: "last-wins" or "reject".
	// Env: STYLE_DUPLICATES
	Duplicates string `env:"DUPLICATES"`

	// Watch enables reloading Paths when they change on disk.
	// Env: STYLE_WATCH
	Watch bool `env:"WATCH"`

	// WatchDebounce is how long file events settle before a reload.
	// Env: STYLE_WATCH_DEBOUNCE
	WatchDebounce time.Duration `env:"WATCH_DEBOUNCE"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the style library database.
type DB struct {
	// Driver is "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name, a file path for sqlite3
	// (e.g. "styles.db") or a PostgreSQL URL for pgx.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// GRPCAddress enables the gRPC health service on "host:port" when set.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// AuthKey is the HMAC key that signs write tokens. Writes to the style
	// library are open when it is empty.
	// Env: SERVER_AUTH_KEY
	AuthKey string `env:"AUTH_KEY"`
}

// Adapter holds settings for talking to a remote style server.
type Adapter struct {
	// HTTPAddress is the base URL of the style server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AuthKey signs the tokens sent with push and delete. It must match
	// the server's SERVER_AUTH_KEY.
	// Env: ADAPTER_AUTH_KEY
	AuthKey string `env:"AUTH_KEY"`
}

// Defaults returns the values used when no source sets a field.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "info",
		},
		Style: Style{
			UnknownKeys:   "warn",
			Duplicates:    "last-wins",
			WatchDebounce: 500 * time.Millisecond,
		},
		Storage: Storage{
			DB: DB{
				Driver: "sqlite3",
				DSN:    "styles.db",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges and validates the server configuration
// from all sources in the following priority order (last source wins for
// non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flag.CommandLine, os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
