package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses the importer flags from args.
//
// Flags:
//
//	-default-db default database DSN
//	-server-db server database DSN
//	-server-url active server url
//	-log-level log level
//	-table table or composite handler name
//	-input JSON payload file path
//	-operation declared operation (create/update)
//	-prepare-only prepare descriptors without committing
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		defaultDSN     string
		serverDSN      string
		serverURL      string
		logLevel       string
		table          string
		input          string
		operation      string
		prepareOnly    bool
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("importer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&defaultDSN, "default-db", "", "Default database DSN")
	fs.StringVar(&serverDSN, "server-db", "", "Server database DSN")
	fs.StringVar(&serverURL, "server-url", "", "Active server url")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&table, "table", "", "Table or composite handler name")
	fs.StringVar(&input, "input", "", "JSON payload file path")
	fs.StringVar(&operation, "operation", "", "Declared operation (create, update)")
	fs.BoolVar(&prepareOnly, "prepare-only", false, "Prepare descriptors without committing")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			Default: DB{DSN: defaultDSN},
			Server:  DB{DSN: serverDSN},
		},
		Server: Server{URL: serverURL},
		Log:    Log{Level: logLevel},
		Import: Import{
			Table:       table,
			Input:       input,
			Operation:   operation,
			PrepareOnly: prepareOnly,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
