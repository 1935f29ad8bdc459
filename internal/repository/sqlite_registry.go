package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/roster/internal/db"
	"github.com/alexanderramin/roster/internal/domain"
)

// SQLiteRegistryRepo implements RegistryRepo using the registry_entries table.
type SQLiteRegistryRepo struct {
	db db.DBTX
}

// NewSQLiteRegistryRepo creates a new SQLiteRegistryRepo.
func NewSQLiteRegistryRepo(conn db.DBTX) *SQLiteRegistryRepo {
	return &SQLiteRegistryRepo{db: conn}
}

func (r *SQLiteRegistryRepo) List(ctx context.Context, kind domain.RegistryKind) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name FROM registry_entries WHERE kind = ? ORDER BY position`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", kind.Plural(), err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", kind, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", kind.Plural(), err)
	}
	return names, nil
}

func (r *SQLiteRegistryRepo) Contains(ctx context.Context, kind domain.RegistryKind, name string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registry_entries WHERE kind = ? AND name = ?`, string(kind), name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking %s %q: %w", kind, name, err)
	}
	return n > 0, nil
}

// Append adds name at the end of the registry.
func (r *SQLiteRegistryRepo) Append(ctx context.Context, kind domain.RegistryKind, name string) error {
	exists, err := r.Contains(ctx, kind, name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s %q: %w", kind, name, domain.ErrDuplicateName)
	}
	query := `INSERT INTO registry_entries (kind, name, position)
		SELECT ?, ?, COALESCE(MAX(position) + 1, 0) FROM registry_entries WHERE kind = ?`
	if _, err := r.db.ExecContext(ctx, query, string(kind), name, string(kind)); err != nil {
		return fmt.Errorf("inserting %s %q: %w", kind, name, err)
	}
	return nil
}

// Rename changes a name in place, keeping its position.
func (r *SQLiteRegistryRepo) Rename(ctx context.Context, kind domain.RegistryKind, oldName, newName string) error {
	exists, err := r.Contains(ctx, kind, newName)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s %q: %w", kind, newName, domain.ErrDuplicateName)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE registry_entries SET name = ? WHERE kind = ? AND name = ?`, newName, string(kind), oldName)
	if err != nil {
		return fmt.Errorf("renaming %s %q: %w", kind, oldName, err)
	}
	return expectOneRow(res, fmt.Sprintf("%s %q", kind, oldName))
}

// Remove deletes name and closes the gap in positions.
func (r *SQLiteRegistryRepo) Remove(ctx context.Context, kind domain.RegistryKind, name string) error {
	var pos int
	err := r.db.QueryRowContext(ctx,
		`SELECT position FROM registry_entries WHERE kind = ? AND name = ?`, string(kind), name).Scan(&pos)
	if err != nil {
		return notFound(err, fmt.Sprintf("%s %q", kind, name))
	}
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM registry_entries WHERE kind = ? AND name = ?`, string(kind), name); err != nil {
		return fmt.Errorf("deleting %s %q: %w", kind, name, err)
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE registry_entries SET position = position - 1 WHERE kind = ? AND position > ?`, string(kind), pos); err != nil {
		return fmt.Errorf("compacting %s positions: %w", kind.Plural(), err)
	}
	return nil
}

// ReplaceAll overwrites the registry with names in the given order. Run it
// inside a transaction when atomicity matters.
func (r *SQLiteRegistryRepo) ReplaceAll(ctx context.Context, kind domain.RegistryKind, names []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM registry_entries WHERE kind = ?`, string(kind)); err != nil {
		return fmt.Errorf("clearing %s: %w", kind.Plural(), err)
	}
	for i, name := range names {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO registry_entries (kind, name, position) VALUES (?, ?, ?)`, string(kind), name, i); err != nil {
			return fmt.Errorf("inserting %s %q: %w", kind, name, err)
		}
	}
	return nil
}
