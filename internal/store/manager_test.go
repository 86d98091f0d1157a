// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latenitesite/mattermost-mobile/internal/logger"
	"github.com/latenitesite/mattermost-mobile/models"
)

func appDescriptor(id string) models.Descriptor {
	return models.Descriptor{
		Table: models.TableApp, Operation: models.OperationCreate, Key: id, ID: id,
		Record: &models.App{ID: id},
	}
}

func roleDescriptor(id string) models.Descriptor {
	return models.Descriptor{
		Table: models.TableRole, Operation: models.OperationCreate, Key: id, ID: id,
		Record: &models.Role{ID: id, Name: id, Permissions: []string{}},
	}
}

func TestManager_ActiveOrDefault(t *testing.T) {
	ctx := context.Background()
	m := NewManager(openTestSQLite(t, "default.db"), logger.Nop())
	defer m.Close()

	_, err := m.ActiveOrDefault(ctx, models.ScopeDefault)
	require.NoError(t, err)

	_, err = m.ActiveOrDefault(ctx, models.ScopeServer)
	require.ErrorIs(t, err, ErrNoActiveDatabase)

	_, err = m.ActiveOrDefault(ctx, models.Scope(0))
	require.ErrorIs(t, err, ErrNoActiveDatabase)

	require.NoError(t, m.SetActiveServer(ctx, "https://a.example.com", openTestSQLite(t, "a.db")))

	h, err := m.ActiveOrDefault(ctx, models.ScopeServer)
	require.NoError(t, err)
	_, err = h.CommitBatch(testContext(), []models.Descriptor{roleDescriptor("r1")})
	require.NoError(t, err)
}

// TestManager_SwitchInvalidatesServerHandles checks that a handle obtained
// before a server switch can neither read nor commit, while default handles
// keep working.
func TestManager_SwitchInvalidatesServerHandles(t *testing.T) {
	ctx := testContext()
	m := NewManager(openTestSQLite(t, "default.db"), logger.Nop())
	defer m.Close()

	require.NoError(t, m.SetActiveServer(ctx, "https://a.example.com", openTestSQLite(t, "a.db")))

	oldServer, err := m.ActiveOrDefault(ctx, models.ScopeServer)
	require.NoError(t, err)
	defaultHandle, err := m.ActiveOrDefault(ctx, models.ScopeDefault)
	require.NoError(t, err)

	require.NoError(t, m.SetActiveServer(ctx, "https://b.example.com", openTestSQLite(t, "b.db")))
	assert.Equal(t, "https://b.example.com", m.ActiveServerURL())

	_, err = oldServer.CommitBatch(ctx, []models.Descriptor{roleDescriptor("r1")})
	require.ErrorIs(t, err, ErrHandleInvalidated)
	var commitErr *CommitError
	assert.ErrorAs(t, err, &commitErr)

	_, err = oldServer.QueryRowsByKeys(ctx, models.TableRole, []string{"r1"})
	require.ErrorIs(t, err, ErrHandleInvalidated)

	_, err = defaultHandle.CommitBatch(ctx, []models.Descriptor{appDescriptor("id-1")})
	require.NoError(t, err)

	newServer, err := m.ActiveOrDefault(ctx, models.ScopeServer)
	require.NoError(t, err)
	rows, err := newServer.QueryRowsByKeys(ctx, models.TableRole, []string{"r1"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestManager_CloseInvalidatesAllHandles(t *testing.T) {
	ctx := testContext()
	m := NewManager(openTestSQLite(t, "default.db"), logger.Nop())
	require.NoError(t, m.SetActiveServer(ctx, "https://a.example.com", openTestSQLite(t, "a.db")))

	defaultHandle, err := m.ActiveOrDefault(ctx, models.ScopeDefault)
	require.NoError(t, err)
	serverHandle, err := m.ActiveOrDefault(ctx, models.ScopeServer)
	require.NoError(t, err)

	require.NoError(t, m.Close())
	// closing twice is a no-op
	require.NoError(t, m.Close())

	_, err = defaultHandle.CommitBatch(ctx, []models.Descriptor{appDescriptor("id-1")})
	assert.ErrorIs(t, err, ErrHandleInvalidated)
	assert.ErrorIs(t, err, ErrCommit)

	_, err = serverHandle.QueryRowsByKeys(ctx, models.TableRole, []string{"r1"})
	assert.ErrorIs(t, err, ErrHandleInvalidated)

	_, err = m.ActiveOrDefault(ctx, models.ScopeDefault)
	assert.ErrorIs(t, err, ErrHandleInvalidated)

	err = m.SetActiveServer(ctx, "https://b.example.com", nil)
	assert.ErrorIs(t, err, ErrHandleInvalidated)
}
