// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/latenitesite/mattermost-mobile/internal/logger"
	"github.com/latenitesite/mattermost-mobile/internal/metrics"
	"github.com/latenitesite/mattermost-mobile/internal/operator"
	"github.com/latenitesite/mattermost-mobile/internal/store"
	"github.com/latenitesite/mattermost-mobile/models"
)

type dataOperator struct {
	databases store.DatabaseProvider
	metrics   *metrics.CommitMetrics
}

// NewDataOperator returns a [DataOperator] reading and writing through the
// databases handed out by databases. commitMetrics may be nil.
func NewDataOperator(databases store.DatabaseProvider, commitMetrics *metrics.CommitMetrics) DataOperator {
	return &dataOperator{databases: databases, metrics: commitMetrics}
}

func lookupTable(table models.TableName) (operator.TableDescriptor, error) {
	td, ok := operator.Lookup(table)
	if !ok {
		return operator.TableDescriptor{}, &UnknownTableError{Table: table}
	}
	return td, nil
}

func (o *dataOperator) database(ctx context.Context, scope models.Scope) (store.Database, error) {
	db, err := o.databases.ActiveOrDefault(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("acquire %s database: %w", scope, err)
	}
	if db == nil {
		return nil, fmt.Errorf("acquire %s database: %w", scope, store.ErrNoActiveDatabase)
	}
	return db, nil
}

func (o *dataOperator) Prepare(ctx context.Context, table models.TableName, declared models.OperationType, values []models.Payload) ([]models.Descriptor, error) {
	td, err := lookupTable(table)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}

	db, err := o.database(ctx, td.Scope)
	if err != nil {
		return nil, err
	}
	return o.prepare(ctx, db, td, declared, values)
}

// prepare is the base handler. It derives every key, reads the stored rows
// of the batch in one query and runs the table operator on each value.
// Values sharing a key collapse into the descriptor of the first of them.
func (o *dataOperator) prepare(ctx context.Context, db store.Database, td operator.TableDescriptor, declared models.OperationType, values []models.Payload) ([]models.Descriptor, error) {
	log := logger.FromContext(ctx)

	if len(values) == 0 {
		return nil, nil
	}

	keys := make([]string, len(values))
	distinct := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for i, value := range values {
		key, err := operator.KeyOf(td.Name, value)
		if err != nil {
			log.Err(err).
				Str("func", "dataOperator.prepare").
				Str("table", td.Name.String()).
				Int("index", i).
				Msg("invalid key, batch rejected")
			return nil, err
		}
		keys[i] = key
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			distinct = append(distinct, key)
		}
	}

	rows, err := db.QueryRowsByKeys(ctx, td.Name, distinct)
	if err != nil {
		log.Err(err).
			Str("func", "dataOperator.prepare").
			Str("table", td.Name.String()).
			Msg("failed to query existing rows")
		return nil, fmt.Errorf("query existing %s rows: %w", td.Name, err)
	}

	existing := make(map[string]*models.Row, len(rows))
	for i := range rows {
		existing[rows[i].Key] = &rows[i]
	}

	descriptors := make([]models.Descriptor, 0, len(distinct))
	position := make(map[string]int, len(distinct))
	for i, value := range values {
		key := keys[i]

		if pos, dup := position[key]; dup {
			merged, err := collapse(td, descriptors[pos], value)
			if err != nil {
				return nil, fmt.Errorf("prepare %s value %d: %w", td.Name, i, err)
			}
			descriptors[pos] = merged
			continue
		}

		row := existing[key]
		if declared.Valid() && declared != observedOperation(row) {
			log.Debug().
				Str("func", "dataOperator.prepare").
				Str("table", td.Name.String()).
				Str("key", key).
				Str("declared", declared.String()).
				Str("observed", observedOperation(row).String()).
				Msg("declared operation disagrees with stored rows")
		}

		d, err := td.Operate(value, row)
		if err != nil {
			log.Err(err).
				Str("func", "dataOperator.prepare").
				Str("table", td.Name.String()).
				Str("key", key).
				Msg("operator rejected value, batch rejected")
			return nil, fmt.Errorf("prepare %s value %d: %w", td.Name, i, err)
		}

		position[key] = len(descriptors)
		descriptors = append(descriptors, d)
	}

	log.Debug().
		Str("func", "dataOperator.prepare").
		Str("table", td.Name.String()).
		Int("values", len(values)).
		Int("descriptors", len(descriptors)).
		Int("stored", len(existing)).
		Msg("batch prepared")

	return descriptors, nil
}

func observedOperation(row *models.Row) models.OperationType {
	if row == nil {
		return models.OperationCreate
	}
	return models.OperationUpdate
}

// collapse merges value over an already prepared descriptor of the same key.
// The descriptor keeps its operation and record id.
func collapse(td operator.TableDescriptor, prepared models.Descriptor, value models.Payload) (models.Descriptor, error) {
	data, err := json.Marshal(prepared.Record)
	if err != nil {
		return models.Descriptor{}, fmt.Errorf("encode prepared %s record: %w", td.Name, err)
	}

	merged, err := td.Operate(value, &models.Row{
		Table: td.Name,
		Key:   prepared.Key,
		ID:    prepared.ID,
		Data:  data,
	})
	if err != nil {
		return models.Descriptor{}, err
	}
	merged.Operation = prepared.Operation
	return merged, nil
}

func (o *dataOperator) BatchOperations(ctx context.Context, descriptors []models.Descriptor) (models.CommitResult, error) {
	if len(descriptors) == 0 {
		return models.CommitResult{}, nil
	}

	scope, err := batchScope(descriptors)
	if err != nil {
		return models.CommitResult{}, err
	}

	db, err := o.database(ctx, scope)
	if err != nil {
		return models.CommitResult{}, err
	}
	return o.commit(ctx, db, scope, descriptors)
}

// batchScope validates descriptors and returns the scope they all share.
func batchScope(descriptors []models.Descriptor) (models.Scope, error) {
	var scope models.Scope
	for _, d := range descriptors {
		if err := d.Validate(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
		}
		td, err := lookupTable(d.Table)
		if err != nil {
			return 0, err
		}
		switch {
		case scope == 0:
			scope = td.Scope
		case scope != td.Scope:
			return 0, fmt.Errorf("%w: %s is in the %s database", ErrMixedScopes, d.Table, td.Scope)
		}
	}
	return scope, nil
}

// commit is the batch committer: one CommitBatch call per batch, no retry.
func (o *dataOperator) commit(ctx context.Context, db store.Database, scope models.Scope, descriptors []models.Descriptor) (models.CommitResult, error) {
	log := logger.FromContext(ctx)

	if len(descriptors) == 0 {
		return models.CommitResult{}, nil
	}

	result, err := db.CommitBatch(ctx, descriptors)
	if err != nil {
		o.metrics.ObserveFailure(scope)
		log.Err(err).
			Str("func", "dataOperator.commit").
			Str("scope", scope.String()).
			Int("descriptors", len(descriptors)).
			Msg("batch commit failed")

		var commitErr *store.CommitError
		if !errors.As(err, &commitErr) {
			err = &store.CommitError{Err: err}
		}
		return models.CommitResult{}, err
	}

	o.metrics.ObserveCommit(descriptors)
	log.Info().
		Str("func", "dataOperator.commit").
		Str("scope", scope.String()).
		Int("created", result.Created).
		Int("updated", result.Updated).
		Msg("batch committed")

	return result, nil
}
