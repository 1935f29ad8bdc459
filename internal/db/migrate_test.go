package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenSession()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"registry_entries", "scenario_templates", "session_settings", "plans", "plan_boards", "plan_rows", "plan_cells"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_registry_entries_position", "idx_scenario_templates_position"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_RejectsInvalidRepeatCount(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO scenario_templates (id, position, name, day, timeslot, repeat_count)
		VALUES ('t1', 0, 'X', 'Mon', 'AM', 0)`)
	assert.Error(t, err, "repeat_count CHECK should reject zero")
}

func TestMigrate_RegistryPrimaryKeyPreventsDuplicates(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO registry_entries (kind, name, position) VALUES ('board', 'SWN', 0)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO registry_entries (kind, name, position) VALUES ('board', 'SWN', 1)`)
	assert.Error(t, err)

	// Same name in a different registry is fine.
	_, err = db.Exec(`INSERT INTO registry_entries (kind, name, position) VALUES ('day', 'SWN', 0)`)
	assert.NoError(t, err)
}

func TestOpenSession_IsolatedPerCall(t *testing.T) {
	a := openTestDB(t)
	b := openTestDB(t)

	_, err := a.Exec(`INSERT INTO session_settings (key, value) VALUES ('strategy', 'random')`)
	require.NoError(t, err)

	var n int
	require.NoError(t, b.QueryRow(`SELECT COUNT(*) FROM session_settings`).Scan(&n))
	assert.Equal(t, 0, n, "sessions must not share state")
}
