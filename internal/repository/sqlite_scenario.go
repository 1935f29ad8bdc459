package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/roster/internal/db"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/google/uuid"
)

// SQLiteScenarioRepo implements ScenarioRepo using the scenario_templates table.
type SQLiteScenarioRepo struct {
	db db.DBTX
}

// NewSQLiteScenarioRepo creates a new SQLiteScenarioRepo.
func NewSQLiteScenarioRepo(conn db.DBTX) *SQLiteScenarioRepo {
	return &SQLiteScenarioRepo{db: conn}
}

// Create appends t to the end of the list, assigning ID and Position.
func (r *SQLiteScenarioRepo) Create(ctx context.Context, t *domain.ScenarioTemplate) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM scenario_templates`).Scan(&t.Position); err != nil {
		return fmt.Errorf("allocating scenario position: %w", err)
	}
	query := `INSERT INTO scenario_templates (id, position, name, day, timeslot, repeat_count)
		VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, t.ID, t.Position, t.Name, t.Day, t.Timeslot, t.RepeatCount); err != nil {
		return fmt.Errorf("inserting scenario row: %w", err)
	}
	return nil
}

func (r *SQLiteScenarioRepo) GetByID(ctx context.Context, id string) (*domain.ScenarioTemplate, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, position, name, day, timeslot, repeat_count FROM scenario_templates WHERE id = ?`, id)
	t, err := scanTemplate(row)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("scenario row %s", id))
	}
	return t, nil
}

func (r *SQLiteScenarioRepo) List(ctx context.Context) ([]domain.ScenarioTemplate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, position, name, day, timeslot, repeat_count FROM scenario_templates ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing scenario rows: %w", err)
	}
	defer rows.Close()

	templates := []domain.ScenarioTemplate{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning scenario row: %w", err)
		}
		templates = append(templates, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scenario rows: %w", err)
	}
	return templates, nil
}

func (r *SQLiteScenarioRepo) Update(ctx context.Context, t *domain.ScenarioTemplate) error {
	if err := t.Validate(); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE scenario_templates SET name = ?, day = ?, timeslot = ?, repeat_count = ? WHERE id = ?`,
		t.Name, t.Day, t.Timeslot, t.RepeatCount, t.ID)
	if err != nil {
		return fmt.Errorf("updating scenario row: %w", err)
	}
	return expectOneRow(res, fmt.Sprintf("scenario row %s", t.ID))
}

// Delete removes a row and closes the gap in positions.
func (r *SQLiteScenarioRepo) Delete(ctx context.Context, id string) error {
	var pos int
	if err := r.db.QueryRowContext(ctx,
		`SELECT position FROM scenario_templates WHERE id = ?`, id).Scan(&pos); err != nil {
		return notFound(err, fmt.Sprintf("scenario row %s", id))
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scenario_templates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting scenario row: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE scenario_templates SET position = position - 1 WHERE position > ?`, pos); err != nil {
		return fmt.Errorf("compacting scenario positions: %w", err)
	}
	return nil
}

func (r *SQLiteScenarioRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scenario_templates`); err != nil {
		return fmt.Errorf("clearing scenario rows: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(s rowScanner) (*domain.ScenarioTemplate, error) {
	var t domain.ScenarioTemplate
	if err := s.Scan(&t.ID, &t.Position, &t.Name, &t.Day, &t.Timeslot, &t.RepeatCount); err != nil {
		return nil, err
	}
	return &t, nil
}
