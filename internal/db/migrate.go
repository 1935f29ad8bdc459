package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS registry_entries (
		kind     TEXT NOT NULL
		         CHECK(kind IN ('participant','board','day','timeslot','scenario')),
		name     TEXT NOT NULL CHECK(length(name) > 0),
		position INTEGER NOT NULL,
		PRIMARY KEY (kind, name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_registry_entries_position ON registry_entries(kind, position)`,

	`CREATE TABLE IF NOT EXISTS scenario_templates (
		id           TEXT PRIMARY KEY,
		position     INTEGER NOT NULL,
		name         TEXT NOT NULL,
		day          TEXT NOT NULL,
		timeslot     TEXT NOT NULL,
		repeat_count INTEGER NOT NULL CHECK(repeat_count >= 1)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_scenario_templates_position ON scenario_templates(position)`,

	`CREATE TABLE IF NOT EXISTS session_settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plans (
		id           TEXT PRIMARY KEY,
		strategy     TEXT NOT NULL
		             CHECK(strategy IN ('random','round_robin','balanced','latin_square')),
		generated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_boards (
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		board_index INTEGER NOT NULL,
		name        TEXT NOT NULL,
		PRIMARY KEY (plan_id, board_index)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_rows (
		plan_id  TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		seq      INTEGER NOT NULL,
		day      TEXT NOT NULL,
		timeslot TEXT NOT NULL,
		scenario TEXT NOT NULL,
		PRIMARY KEY (plan_id, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_cells (
		plan_id     TEXT NOT NULL,
		seq         INTEGER NOT NULL,
		board_index INTEGER NOT NULL,
		participant TEXT NOT NULL,
		PRIMARY KEY (plan_id, seq, board_index),
		FOREIGN KEY (plan_id, seq) REFERENCES plan_rows(plan_id, seq) ON DELETE CASCADE
	)`,
}
