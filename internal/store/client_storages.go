package store

import (
	"context"
	"fmt"

	"github.com/latenitesite/mattermost-mobile/internal/config"
	"github.com/latenitesite/mattermost-mobile/internal/logger"
)

// ClientStorages groups the client-side databases into a single value that
// can be passed to the service layer.
type ClientStorages struct {
	// Manager serves the default database and, when a server is
	// configured, the active server database.
	Manager *Manager
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the default SQLite database at cfg.Default.DSN and migrates it.
//  2. When serverURL is set, opens the server database at cfg.Server.DSN,
//     migrates it and makes it the active server database.
//
// Returns an error if a database cannot be opened or migrated.
func NewClientStorages(ctx context.Context, cfg config.Storage, serverURL string, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	defaultDB, err := openMigrated(ctx, cfg.Default, log)
	if err != nil {
		return nil, fmt.Errorf("default database: %w", err)
	}
	manager := NewManager(defaultDB, log)

	if serverURL != "" {
		serverDB, err := openMigrated(ctx, cfg.Server, log)
		if err != nil {
			manager.Close()
			return nil, fmt.Errorf("server database: %w", err)
		}
		if err = manager.SetActiveServer(ctx, serverURL, serverDB); err != nil {
			manager.Close()
			return nil, err
		}
	}

	return &ClientStorages{Manager: manager}, nil
}

func openMigrated(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}
