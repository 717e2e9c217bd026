package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"
)

func newMockWrappedDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return &DB{
		DB:  sqlx.NewDb(mockDB, "sqlmock"),
		sem: semaphore.NewWeighted(1),
	}, mock
}

func TestMigrateAppliesAllStatementsInOneTransaction(t *testing.T) {
	db, mock := newMockWrappedDB(t)

	mock.ExpectBegin()
	for range schemaStatements {
		mock.ExpectExec(`CREATE (TABLE|INDEX) IF NOT EXISTS`).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	require.NoError(t, db.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateRollsBackOnStatementError(t *testing.T) {
	db, mock := newMockWrappedDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS customer`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS product`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := db.Migrate(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxReleasesSemaphore(t *testing.T) {
	db, mock := newMockWrappedDB(t)

	// Weight 1: a leaked permit would deadlock the second transaction.
	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
		err := db.WithTx(context.Background(), func(tx *sql.Tx) error { return nil })
		require.NoError(t, err)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxCanceledContext(t *testing.T) {
	db, _ := newMockWrappedDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := db.WithTx(ctx, func(tx *sql.Tx) error { return nil })
	assert.Error(t, err)
}
