// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/latenitesite/mattermost-mobile/internal/logger"
	"github.com/latenitesite/mattermost-mobile/models"
)

// Manager holds the default database and the database of the active
// server, and hands out handles to them.
//
// A handle stays bound to the database it was issued for. Switching the
// active server invalidates every server handle issued before the switch,
// and closing the manager invalidates all handles. The manager lock is held
// while a handle queries or commits, so a switch waits for in-flight
// commits to finish.
type Manager struct {
	mu sync.RWMutex

	defaultDB *DB
	serverDB  *DB
	serverURL string

	// serverGen is bumped on every server switch.
	serverGen uint64
	closed    bool

	logger *logger.Logger
}

// NewManager returns a manager serving defaultDB for the default scope. The
// server scope has no database until [Manager.SetActiveServer] is called.
func NewManager(defaultDB *DB, log *logger.Logger) *Manager {
	return &Manager{
		defaultDB: defaultDB,
		logger:    log,
	}
}

// SetActiveServer makes db the server database. The previous server
// database is closed and its handles stop working.
func (m *Manager) SetActiveServer(ctx context.Context, serverURL string, db *DB) error {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrHandleInvalidated
	}

	prev := m.serverDB
	m.serverDB = db
	m.serverURL = serverURL
	m.serverGen++

	log.Info().
		Str("func", "Manager.SetActiveServer").
		Str("server_url", serverURL).
		Uint64("generation", m.serverGen).
		Msg("active server database switched")

	if prev != nil && prev != db {
		if err := prev.Close(); err != nil {
			log.Err(err).Str("func", "Manager.SetActiveServer").Msg("failed to close previous server database")
			return fmt.Errorf("close previous server database: %w", err)
		}
	}

	return nil
}

// ActiveServerURL returns the url passed to the last SetActiveServer call.
func (m *Manager) ActiveServerURL() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.serverURL
}

// ActiveOrDefault returns a handle to the database serving scope.
func (m *Manager) ActiveOrDefault(_ context.Context, scope models.Scope) (Database, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrHandleInvalidated
	}

	switch scope {
	case models.ScopeDefault:
		if m.defaultDB == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoActiveDatabase, scope)
		}
		return m.newHandle(scope, m.defaultDB), nil
	case models.ScopeServer:
		if m.serverDB == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoActiveDatabase, scope)
		}
		return m.newHandle(scope, m.serverDB), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoActiveDatabase, scope)
	}
}

// Close invalidates every handle and closes both databases.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	var errs []error
	if m.serverDB != nil {
		errs = append(errs, m.serverDB.Close())
	}
	if m.defaultDB != nil {
		errs = append(errs, m.defaultDB.Close())
	}
	return errors.Join(errs...)
}

func (m *Manager) newHandle(scope models.Scope, db *DB) *handle {
	return &handle{
		manager:    m,
		scope:      scope,
		generation: m.serverGen,
		repo:       NewRecordRepository(db, m.logger),
	}
}

// valid must be called with m.mu held.
func (m *Manager) valid(h *handle) bool {
	if m.closed {
		return false
	}
	return h.scope == models.ScopeDefault || h.generation == m.serverGen
}

type handle struct {
	manager    *Manager
	scope      models.Scope
	generation uint64
	repo       Database
}

func (h *handle) QueryRowsByKeys(ctx context.Context, table models.TableName, keys []string) ([]models.Row, error) {
	h.manager.mu.RLock()
	defer h.manager.mu.RUnlock()

	if !h.manager.valid(h) {
		return nil, ErrHandleInvalidated
	}
	return h.repo.QueryRowsByKeys(ctx, table, keys)
}

func (h *handle) CommitBatch(ctx context.Context, descriptors []models.Descriptor) (models.CommitResult, error) {
	h.manager.mu.RLock()
	defer h.manager.mu.RUnlock()

	if !h.manager.valid(h) {
		logger.FromContext(ctx).Warn().
			Str("func", "handle.CommitBatch").
			Str("scope", h.scope.String()).
			Msg("commit on invalidated database handle")
		return models.CommitResult{}, &CommitError{Err: ErrHandleInvalidated}
	}
	return h.repo.CommitBatch(ctx, descriptors)
}
