package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

type StructuredJSONConfig struct {
	Storage struct {
		Default struct {
			DSN string `json:"dsn"`
		} `json:"default,omitempty"`

		Server struct {
			DSN string `json:"dsn"`
		} `json:"server,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		URL string `json:"url"`
	} `json:"server,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Import struct {
		Table       string `json:"table"`
		Input       string `json:"input"`
		Operation   string `json:"operation"`
		PrepareOnly bool   `json:"prepare_only"`
	} `json:"import,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			Default: DB{DSN: jsonCfg.Storage.Default.DSN},
			Server:  DB{DSN: jsonCfg.Storage.Server.DSN},
		},
		Server: Server{URL: jsonCfg.Server.URL},
		Log:    Log{Level: jsonCfg.Log.Level},
		Import: Import{
			Table:       jsonCfg.Import.Table,
			Input:       jsonCfg.Import.Input,
			Operation:   jsonCfg.Import.Operation,
			PrepareOnly: jsonCfg.Import.PrepareOnly,
		},
	}

	return cfg, nil
}
