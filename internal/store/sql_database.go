package store

import (
	"database/sql"
	"time"

	"github.com/latenitesite/mattermost-mobile/internal/logger"
	"github.com/latenitesite/mattermost-mobile/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
	now    func() time.Time
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
