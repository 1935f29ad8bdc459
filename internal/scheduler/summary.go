package scheduler

import (
	"fmt"

	"github.com/alexanderramin/roster/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize tallies per-participant, per-board occurrence counts. Every
// registered participant gets a row, in registry order, even with zero
// counts. Participants that appear in the plan but are no longer registered
// are appended after them in order of first appearance.
func Summarize(rows []domain.PlanRow, participants, boards []string) (*domain.Tally, error) {
	tally := &domain.Tally{Boards: append([]string(nil), boards...)}
	index := make(map[string]int, len(participants))

	addRow := func(p string) int {
		tally.Rows = append(tally.Rows, domain.TallyRow{
			Participant: p,
			PerBoard:    make([]int, len(boards)),
		})
		index[p] = len(tally.Rows) - 1
		return index[p]
	}
	for _, p := range participants {
		if _, ok := index[p]; !ok {
			addRow(p)
		}
	}

	for i, row := range rows {
		if len(row.Assignment) != len(boards) {
			return nil, fmt.Errorf("summarizing plan: row %d has %d assignments for %d boards", i, len(row.Assignment), len(boards))
		}
		for b, p := range row.Assignment {
			idx, ok := index[p]
			if !ok {
				idx = addRow(p)
			}
			tally.Rows[idx].PerBoard[b]++
			tally.Rows[idx].Total++
		}
	}
	return tally, nil
}

// Fairness describes how evenly the workload is spread across participants.
type Fairness struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Spread float64 // Max - Min
}

// ComputeFairness derives spread statistics from participant totals.
// An empty tally yields the zero value.
func ComputeFairness(t *domain.Tally) Fairness {
	if t == nil || len(t.Rows) == 0 {
		return Fairness{}
	}
	totals := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		totals[i] = float64(r.Total)
	}
	var f Fairness
	if len(totals) > 1 {
		f.Mean, f.StdDev = stat.MeanStdDev(totals, nil)
	} else {
		f.Mean = totals[0]
	}
	f.Min = floats.Min(totals)
	f.Max = floats.Max(totals)
	f.Spread = f.Max - f.Min
	return f
}
