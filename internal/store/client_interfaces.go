package store

import (
	"context"

	"github.com/latenitesite/mattermost-mobile/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/store_mock.go -package=mock

// Database is the narrow collaborator the data operator reads and writes
// through. Implementations must apply a CommitBatch call atomically.
type Database interface {
	// QueryRowsByKeys returns the stored rows of table whose business key is
	// one of keys. Keys without a row are simply absent from the result.
	QueryRowsByKeys(ctx context.Context, table models.TableName, keys []string) ([]models.Row, error)
	// CommitBatch applies every descriptor in one transaction.
	CommitBatch(ctx context.Context, descriptors []models.Descriptor) (models.CommitResult, error)
}

// DatabaseProvider hands out the database serving a scope.
type DatabaseProvider interface {
	ActiveOrDefault(ctx context.Context, scope models.Scope) (Database, error)
}
