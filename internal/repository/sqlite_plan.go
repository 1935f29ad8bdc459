package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/roster/internal/db"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/google/uuid"
)

// SQLitePlanRepo implements PlanRepo across the plans, plan_boards, plan_rows
// and plan_cells tables. The session keeps at most one plan.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Current(ctx context.Context) (*domain.Plan, error) {
	var p domain.Plan
	var strategy, generatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, strategy, generated_at FROM plans ORDER BY generated_at DESC LIMIT 1`).
		Scan(&p.ID, &strategy, &generatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	p.Strategy = domain.Strategy(strategy)
	p.GeneratedAt = parseTime(generatedAt)

	if p.Boards, err = r.loadBoards(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Rows, err = r.loadRows(ctx, p.ID); err != nil {
		return nil, err
	}
	if err := r.loadCells(ctx, p.ID, len(p.Boards), p.Rows); err != nil {
		return nil, err
	}
	return &p, nil
}

// Replace deletes every stored plan and writes p. Call it inside a
// transaction so a failed write keeps the previous plan.
func (r *SQLitePlanRepo) Replace(ctx context.Context, p *domain.Plan) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans`); err != nil {
		return fmt.Errorf("clearing plans: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO plans (id, strategy, generated_at) VALUES (?, ?, ?)`,
		p.ID, string(p.Strategy), formatTime(p.GeneratedAt)); err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	for i, b := range p.Boards {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_boards (plan_id, board_index, name) VALUES (?, ?, ?)`, p.ID, i, b); err != nil {
			return fmt.Errorf("inserting plan board %q: %w", b, err)
		}
	}
	for seq, row := range p.Rows {
		if len(row.Assignment) != len(p.Boards) {
			return fmt.Errorf("plan row %d has %d assignments for %d boards", seq, len(row.Assignment), len(p.Boards))
		}
		o := row.Occurrence
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_rows (plan_id, seq, day, timeslot, scenario) VALUES (?, ?, ?, ?, ?)`,
			p.ID, seq, o.Day, o.Timeslot, o.Scenario); err != nil {
			return fmt.Errorf("inserting plan row %d: %w", seq, err)
		}
		for b, participant := range row.Assignment {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO plan_cells (plan_id, seq, board_index, participant) VALUES (?, ?, ?, ?)`,
				p.ID, seq, b, participant); err != nil {
				return fmt.Errorf("inserting plan cell %d/%d: %w", seq, b, err)
			}
		}
	}
	return nil
}

func (r *SQLitePlanRepo) loadBoards(ctx context.Context, planID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name FROM plan_boards WHERE plan_id = ? ORDER BY board_index`, planID)
	if err != nil {
		return nil, fmt.Errorf("loading plan boards: %w", err)
	}
	defer rows.Close()

	boards := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning plan board: %w", err)
		}
		boards = append(boards, name)
	}
	return boards, rows.Err()
}

func (r *SQLitePlanRepo) loadRows(ctx context.Context, planID string) ([]domain.PlanRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day, timeslot, scenario FROM plan_rows WHERE plan_id = ? ORDER BY seq`, planID)
	if err != nil {
		return nil, fmt.Errorf("loading plan rows: %w", err)
	}
	defer rows.Close()

	out := []domain.PlanRow{}
	for rows.Next() {
		var o domain.Occurrence
		if err := rows.Scan(&o.Day, &o.Timeslot, &o.Scenario); err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}
		out = append(out, domain.PlanRow{Occurrence: o})
	}
	return out, rows.Err()
}

func (r *SQLitePlanRepo) loadCells(ctx context.Context, planID string, boards int, out []domain.PlanRow) error {
	for i := range out {
		out[i].Assignment = make(domain.Assignment, boards)
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, board_index, participant FROM plan_cells WHERE plan_id = ?`, planID)
	if err != nil {
		return fmt.Errorf("loading plan cells: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var seq, b int
		var participant string
		if err := rows.Scan(&seq, &b, &participant); err != nil {
			return fmt.Errorf("scanning plan cell: %w", err)
		}
		if seq < 0 || seq >= len(out) || b < 0 || b >= boards {
			return fmt.Errorf("plan cell %d/%d out of range", seq, b)
		}
		out[seq].Assignment[b] = participant
	}
	return rows.Err()
}
