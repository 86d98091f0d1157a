// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/latenitesite/mattermost-mobile/models"
)

// Low-level database operation errors. Repository methods wrap them so
// callers can match with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL statement fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single stored row fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan record rows")
)

var (
	// ErrRecordNotUpdated is returned when an update descriptor matches no
	// stored row.
	ErrRecordNotUpdated = errors.New("record was not updated")

	// ErrEncodingRecord is returned when a descriptor record cannot be
	// encoded for storage.
	ErrEncodingRecord = errors.New("failed to encode record")

	// ErrInvalidOperation is returned for descriptors that are neither a
	// create nor an update.
	ErrInvalidOperation = errors.New("invalid descriptor operation")

	// ErrTableNotMapped is returned for a table that has no storage table.
	ErrTableNotMapped = errors.New("table has no storage mapping")

	// ErrHandleInvalidated is returned by a database handle after the
	// active server changed or the manager was closed.
	ErrHandleInvalidated = errors.New("database handle was invalidated")

	// ErrNoActiveDatabase is returned when no database serves the requested
	// scope.
	ErrNoActiveDatabase = errors.New("no active database for scope")

	// ErrCommit matches every [CommitError].
	ErrCommit = errors.New("batch commit failed")
)

// CommitError reports a batch that was not committed. Table and Key name
// the descriptor that failed and are empty when the failure happened
// outside a single write (begin, commit, invalidated handle).
type CommitError struct {
	Table models.TableName
	Key   string
	Err   error
}

func (e *CommitError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s: %v", ErrCommit, e.Err)
	}
	return fmt.Sprintf("%s: %s %q: %v", ErrCommit, e.Table, e.Key, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

func (e *CommitError) Is(target error) bool {
	return target == ErrCommit
}
