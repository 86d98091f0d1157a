// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable by the
// importer.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Default.DSN == "" {
		return fmt.Errorf("%w: default database DSN is empty", ErrInvalidStorageConfigs)
	}
	if cfg.Server.URL != "" && cfg.Storage.Server.DSN == "" {
		return fmt.Errorf("%w: server url is set but server database DSN is empty", ErrInvalidStorageConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if cfg.Import.Table == "" || cfg.Import.Input == "" {
		return fmt.Errorf("%w: table and input are required", ErrInvalidImportConfigs)
	}
	switch cfg.Import.Operation {
	case "create", "update":
	default:
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidImportConfigs, cfg.Import.Operation)
	}

	return nil
}
