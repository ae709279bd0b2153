// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the server. It is populated by merging defaults, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the client transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the server database and the client
	// state store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the reference server.
	Server Server `envPrefix:"SERVER_"`

	// Session holds client session settings (auto-lock).
	Session Session `envPrefix:"SESSION_"`

	// Generator holds password generator defaults.
	Generator Generator `envPrefix:"GENERATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client writes its log. The server always logs
	// to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the settings of the client's HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the API server
	// (e.g. "http://localhost:8080"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the server database connection settings.
	DB DB `envPrefix:"DB_"`

	// State holds the client's durable state store settings.
	State State `envPrefix:"STATE_"`
}

// DB holds connection settings for the server database. A DSN starting
// with postgres:// or postgresql:// selects PostgreSQL, anything else is
// treated as a SQLite file path.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// State holds the client-side SQLite settings.
type State struct {
	// Env: STORAGE_STATE_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings of the reference server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds client session settings.
type Session struct {
	// AutoLockTimeout is the inactivity period after which the client
	// locks itself and forgets the identity.
	// Env: SESSION_AUTO_LOCK_TIMEOUT
	AutoLockTimeout time.Duration `env:"AUTO_LOCK_TIMEOUT"`
}

// Generator holds password generator defaults.
type Generator struct {
	// Length is the default generated password length.
	// Env: GENERATOR_LENGTH
	Length int `env:"LENGTH"`
}

// Defaults returns the built-in configuration applied before any other
// source.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			DB:    DB{DSN: "mypass-server.db"},
			State: State{DSN: "mypass.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Session: Session{
			AutoLockTimeout: 60 * time.Second,
		},
		Generator: Generator{
			Length: 12,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. flags may be nil when no command-line flags are bound.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
