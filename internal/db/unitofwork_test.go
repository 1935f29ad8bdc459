package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/roster/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenSession()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

// readSetting reads a session setting through a read-only transaction.
func readSetting(uow *db.SQLiteUnitOfWork, key string) (string, bool) {
	var val string
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT value FROM session_settings WHERE key = ?`, key)
		if err := row.Scan(&val); err != nil {
			return nil
		}
		found = true
		return nil
	})
	return val, found
}

func insertSetting(ctx context.Context, tx db.DBTX, key, val string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO session_settings (key, value) VALUES (?, ?)`, key, val)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertSetting(ctx, tx, "strategy", "balanced")
	})
	require.NoError(t, err)

	val, found := readSetting(uow, "strategy")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "balanced", val)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSetting(ctx, tx, "k2", "v2"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := readSetting(uow, "k2")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertSetting(ctx, tx, "k3", "v3")
			panic("boom")
		})
	})

	_, found := readSetting(uow, "k3")
	assert.False(t, found, "row should not exist after panic rollback")
}
