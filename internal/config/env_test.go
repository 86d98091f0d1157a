package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		// Storage has nested prefixes: STORAGE_ + DEFAULT_ / SERVER_
		"STORAGE_DEFAULT_DSN": "/data/default.db",
		"STORAGE_SERVER_DSN":  "/data/server.db",

		"SERVER_URL": "https://chat.example.com",
		"LOG_LEVEL":  "warn",

		"IMPORT_TABLE":        "User",
		"IMPORT_INPUT":        "users.json",
		"IMPORT_OPERATION":    "update",
		"IMPORT_PREPARE_ONLY": "true",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/data/default.db", cfg.Storage.Default.DSN)
	assert.Equal(t, "/data/server.db", cfg.Storage.Server.DSN)
	assert.Equal(t, "https://chat.example.com", cfg.Server.URL)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, Import{Table: "User", Input: "users.json", Operation: "update", PrepareOnly: true}, cfg.Import)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("IMPORT_PREPARE_ONLY", "not-a-bool")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}
