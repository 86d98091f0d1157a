package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latenitesite/mattermost-mobile/internal/logger"
	"github.com/latenitesite/mattermost-mobile/models"
)

var (
	testNow       = time.UnixMilli(1700000000000)
	testNowMillis = testNow.UnixMilli()
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	d := newDB(db, logger.Nop())
	d.now = func() time.Time { return testNow }
	return d
}

func newTestRepo(t *testing.T, db *sql.DB) Database {
	t.Helper()
	return NewRecordRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ── QueryRowsByKeys ──────────────────────────────────────────────────────────

func TestRecordRepository_QueryRowsByKeys_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "post" WHERE record_key IN (?,?)`)).
		WithArgs("p1", "p2").
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow("p1", "p1", `{"id":"p1","message":"hi"}`, int64(1000), int64(2000)))

	rows, err := repo.QueryRowsByKeys(testContext(), models.TablePost, []string{"p1", "p2"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, models.Row{
		Table:     models.TablePost,
		Key:       "p1",
		ID:        "p1",
		Data:      []byte(`{"id":"p1","message":"hi"}`),
		CreatedAt: time.UnixMilli(1000),
		UpdatedAt: time.UnixMilli(2000),
	}, rows[0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_QueryRowsByKeys_NoKeys(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	rows, err := repo.QueryRowsByKeys(testContext(), models.TablePost, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_QueryRowsByKeys_Errors(t *testing.T) {
	tests := []struct {
		name    string
		table   models.TableName
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name:    "unmapped table",
			table:   "INVALID_TABLE_NAME",
			setup:   func(sqlmock.Sqlmock) {},
			wantErr: ErrTableNotMapped,
		},
		{
			name:  "query error",
			table: models.TableUser,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM "user"`)).WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name:  "scan error",
			table: models.TableUser,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM "user"`)).
					WillReturnRows(sqlmock.NewRows(rowColumns).AddRow("u1", "u1", "{}", "not-a-number", int64(1)))
			},
			wantErr: ErrScanningRow,
		},
		{
			name:  "rows error",
			table: models.TableUser,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM "user"`)).
					WillReturnRows(sqlmock.NewRows(rowColumns).
						AddRow("u1", "u1", "{}", int64(1), int64(1)).
						RowError(0, errors.New("row broken")))
			},
			wantErr: ErrScanningRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestRepo(t, db)
			tt.setup(mock)

			_, err := repo.QueryRowsByKeys(testContext(), tt.table, []string{"u1"})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── CommitBatch ──────────────────────────────────────────────────────────────

func TestRecordRepository_CommitBatch_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	descriptors := []models.Descriptor{
		{
			Table: models.TablePost, Operation: models.OperationCreate, Key: "p1", ID: "p1",
			Record: &models.Post{ID: "p1", Message: "hi"},
		},
		{
			Table: models.TableUser, Operation: models.OperationUpdate, Key: "u1", ID: "u1",
			Record: &models.User{ID: "u1", Username: "a.l"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "post"`)).
		WithArgs("p1", "p1", sqlmock.AnyArg(), testNowMillis, testNowMillis).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user" SET data = ?, updated_at = ? WHERE record_key = ?`)).
		WithArgs(sqlmock.AnyArg(), testNowMillis, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.CommitBatch(testContext(), descriptors)
	require.NoError(t, err)
	assert.Equal(t, models.CommitResult{Created: 1, Updated: 1}, result)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_CommitBatch_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	result, err := repo.CommitBatch(testContext(), nil)
	require.NoError(t, err)
	assert.Zero(t, result.Total())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_CommitBatch_Errors(t *testing.T) {
	postCreate := models.Descriptor{
		Table: models.TablePost, Operation: models.OperationCreate, Key: "p1", ID: "p1",
		Record: &models.Post{ID: "p1"},
	}
	userUpdate := models.Descriptor{
		Table: models.TableUser, Operation: models.OperationUpdate, Key: "u1", ID: "u1",
		Record: &models.User{ID: "u1"},
	}

	tests := []struct {
		name        string
		descriptors []models.Descriptor
		setup       func(mock sqlmock.Sqlmock)
		wantErr     error
		wantTable   models.TableName
	}{
		{
			name:        "begin fails",
			descriptors: []models.Descriptor{postCreate},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("database is locked"))
			},
			wantErr: ErrBeginningTransaction,
		},
		{
			name:        "insert fails",
			descriptors: []models.Descriptor{postCreate},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "post"`)).
					WillReturnError(errors.New("UNIQUE constraint failed"))
				mock.ExpectRollback()
			},
			wantErr:   ErrExecutingStatement,
			wantTable: models.TablePost,
		},
		{
			name:        "update matches no row",
			descriptors: []models.Descriptor{postCreate, userUpdate},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "post"`)).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user"`)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr:   ErrRecordNotUpdated,
			wantTable: models.TableUser,
		},
		{
			name: "invalid operation",
			descriptors: []models.Descriptor{
				{Table: models.TablePost, Key: "p1", ID: "p1", Record: &models.Post{}},
			},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			wantErr:   ErrInvalidOperation,
			wantTable: models.TablePost,
		},
		{
			name:        "commit fails",
			descriptors: []models.Descriptor{postCreate},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "post"`)).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit().WillReturnError(errors.New("disk full"))
			},
			wantErr: ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestRepo(t, db)
			tt.setup(mock)

			result, err := repo.CommitBatch(testContext(), tt.descriptors)
			require.Error(t, err)
			assert.Zero(t, result.Total())

			assert.ErrorIs(t, err, ErrCommit)
			assert.ErrorIs(t, err, tt.wantErr)

			var commitErr *CommitError
			require.ErrorAs(t, err, &commitErr)
			assert.Equal(t, tt.wantTable, commitErr.Table)

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
