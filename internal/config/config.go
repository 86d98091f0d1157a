// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from command-line flags, environment
// variables, an optional JSON file and the defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds the SQLite settings of the default and the server
	// databases.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server identifies the server whose database is active.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Import describes the payload file fed to a handler by the importer.
	Import Import `envPrefix:"IMPORT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the two databases the client keeps.
type Storage struct {
	// Default is the database shared by all servers (App, Global, Servers).
	Default DB `envPrefix:"DEFAULT_"`

	// Server is the database of the active server.
	Server DB `envPrefix:"SERVER_"`
}

// DB holds connection settings for one SQLite database.
type DB struct {
	// DSN is a file path, a "file:" URI or ":memory:".
	// Env: STORAGE_DEFAULT_DSN, STORAGE_SERVER_DSN
	DSN string `env:"DSN"`
}

// Server identifies the active server.
type Server struct {
	// URL of the server. When empty no server database is opened and only
	// default-scope tables can be written.
	// Env: SERVER_URL
	URL string `env:"URL"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error, ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Import describes one import run.
type Import struct {
	// Table is the entity family the payloads belong to, or "Reactions" /
	// "Posts" for the composite handlers.
	// Env: IMPORT_TABLE
	Table string `env:"TABLE"`

	// Input is the path of a JSON file holding an array of payloads.
	// Env: IMPORT_INPUT
	Input string `env:"INPUT"`

	// Operation is the declared operation, "create" or "update".
	// Env: IMPORT_OPERATION
	Operation string `env:"OPERATION"`

	// PrepareOnly prepares the descriptors without committing them.
	// Env: IMPORT_PREPARE_ONLY
	PrepareOnly bool `env:"PREPARE_ONLY"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. args are the command-line arguments without the
// program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
