package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
		wantErr  bool
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: &StructuredConfig{},
		},
		{
			name: "all flags",
			args: []string{
				"-default-db", "/data/default.db",
				"-server-db", "/data/server.db",
				"-server-url", "https://chat.example.com",
				"-log-level", "debug",
				"-table", "Reactions",
				"-input", "reactions.json",
				"-operation", "update",
				"-prepare-only",
				"-c", "config.json",
			},
			expected: &StructuredConfig{
				Storage: Storage{
					Default: DB{DSN: "/data/default.db"},
					Server:  DB{DSN: "/data/server.db"},
				},
				Server: Server{URL: "https://chat.example.com"},
				Log:    Log{Level: "debug"},
				Import: Import{
					Table:       "Reactions",
					Input:       "reactions.json",
					Operation:   "update",
					PrepareOnly: true,
				},
				JSONFilePath: "config.json",
			},
		},
		{
			name:     "config alias",
			args:     []string{"-config", "other.json"},
			expected: &StructuredConfig{JSONFilePath: "other.json"},
		},
		{
			name:    "unknown flag",
			args:    []string{"-unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}
