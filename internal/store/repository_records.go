// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/latenitesite/mattermost-mobile/internal/logger"
	"github.com/latenitesite/mattermost-mobile/models"
)

type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository returns a [Database] that keeps every table's records
// as JSON rows in db.
func NewRecordRepository(db *DB, logger *logger.Logger) Database {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recordRepository) QueryRowsByKeys(ctx context.Context, table models.TableName, keys []string) ([]models.Row, error) {
	log := logger.FromContext(ctx)

	var result []models.Row
	for _, chunk := range chunkKeys(keys, maxKeysPerQuery) {
		query, args, err := buildSelectRowsByKeysQuery(table, chunk)
		if err != nil {
			log.Err(err).
				Str("func", "recordRepository.QueryRowsByKeys").
				Str("table", table.String()).
				Msg("failed to build select query")
			return nil, err
		}

		rows, err := r.queryRows(ctx, table, query, args)
		if err != nil {
			log.Err(err).
				Str("func", "recordRepository.QueryRowsByKeys").
				Str("table", table.String()).
				Int("keys", len(chunk)).
				Msg("failed to query stored rows")
			return nil, err
		}
		result = append(result, rows...)
	}

	return result, nil
}

func (r *recordRepository) queryRows(ctx context.Context, table models.TableName, query string, args []any) ([]models.Row, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var result []models.Row
	for rows.Next() {
		var (
			row                  = models.Row{Table: table}
			data                 string
			createdAt, updatedAt int64
		)
		if err = rows.Scan(&row.Key, &row.ID, &data, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		row.Data = []byte(data)
		row.CreatedAt = time.UnixMilli(createdAt)
		row.UpdatedAt = time.UnixMilli(updatedAt)
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *recordRepository) CommitBatch(ctx context.Context, descriptors []models.Descriptor) (models.CommitResult, error) {
	log := logger.FromContext(ctx)

	var result models.CommitResult
	if len(descriptors) == 0 {
		return result, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.CommitBatch").
			Msg("failed to begin transaction")
		return result, &CommitError{Err: fmt.Errorf("%w: %w", ErrBeginningTransaction, err)}
	}
	defer tx.Rollback()

	now := r.now().UnixMilli()
	for _, d := range descriptors {
		if err = r.apply(ctx, tx, d, now); err != nil {
			log.Err(err).
				Str("func", "recordRepository.CommitBatch").
				Str("table", d.Table.String()).
				Str("key", d.Key).
				Str("operation", d.Operation.String()).
				Msg("failed to apply descriptor, rolling back")
			return models.CommitResult{}, &CommitError{Table: d.Table, Key: d.Key, Err: err}
		}
		result.Add(d.Operation)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "recordRepository.CommitBatch").
			Int("descriptors", len(descriptors)).
			Msg("failed to commit transaction")
		return models.CommitResult{}, &CommitError{Err: fmt.Errorf("%w: %w", ErrCommitingTransaction, err)}
	}

	log.Debug().
		Str("func", "recordRepository.CommitBatch").
		Int("created", result.Created).
		Int("updated", result.Updated).
		Msg("batch committed")

	return result, nil
}

func (r *recordRepository) apply(ctx context.Context, tx *sql.Tx, d models.Descriptor, now int64) error {
	data, err := json.Marshal(d.Record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	var (
		query string
		args  []any
	)
	switch d.Operation {
	case models.OperationCreate:
		query, args, err = buildInsertRowQuery(d.Table, d.Key, d.ID, data, now)
	case models.OperationUpdate:
		query, args, err = buildUpdateRowQuery(d.Table, d.Key, data, now)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidOperation, d.Operation)
	}
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if d.Operation == models.OperationUpdate {
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected != 1 {
			return ErrRecordNotUpdated
		}
	}

	return nil
}
