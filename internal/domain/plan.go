package domain

import "time"

// Assignment lists one participant per board; index i staffs board i.
type Assignment []string

// PlanRow pairs an occurrence with its assignment.
type PlanRow struct {
	Occurrence Occurrence
	Assignment Assignment
}

// Plan is the output of one generation run. It is replaced wholesale by the
// next successful run.
type Plan struct {
	ID          string
	Strategy    Strategy
	GeneratedAt time.Time
	Boards      []string
	Rows        []PlanRow
}

// OccurrenceCount returns the number of staffed occurrences.
func (p *Plan) OccurrenceCount() int {
	if p == nil {
		return 0
	}
	return len(p.Rows)
}

// TallyRow holds the per-board counts for one participant.
type TallyRow struct {
	Participant string
	PerBoard    []int // indexed like Tally.Boards
	Total       int
}

// Tally aggregates how often each participant staffed each board.
type Tally struct {
	Boards []string
	Rows   []TallyRow
}

// Row returns the tally row of a participant.
func (t *Tally) Row(participant string) (TallyRow, bool) {
	for _, r := range t.Rows {
		if r.Participant == participant {
			return r, true
		}
	}
	return TallyRow{}, false
}

// GrandTotal sums every participant total.
func (t *Tally) GrandTotal() int {
	sum := 0
	for _, r := range t.Rows {
		sum += r.Total
	}
	return sum
}
