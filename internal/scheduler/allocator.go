package scheduler

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/alexanderramin/roster/internal/contract"
	"github.com/alexanderramin/roster/internal/domain"
)

// AllocationInput is the snapshot every strategy consumes. Participants and
// Boards are in registry order; Occurrences are already canonically sorted.
type AllocationInput struct {
	Occurrences  []domain.Occurrence
	Participants []string
	Boards       []string
}

// NewRand returns a random source. A zero seed draws one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Allocate runs the selected strategy. It returns one row per occurrence or
// a *contract.PlanError; it never mutates the input slices.
func Allocate(strategy domain.Strategy, in AllocationInput, rng *rand.Rand) ([]domain.PlanRow, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	switch strategy {
	case domain.StrategyRandom:
		return assignRandom(in, rng), nil
	case domain.StrategyRoundRobin:
		return assignRoundRobin(in), nil
	case domain.StrategyBalanced:
		return assignBalanced(in), nil
	case domain.StrategyLatin:
		return assignLatinSquare(in, rng)
	default:
		return nil, fmt.Errorf("allocating plan: %w: %q", domain.ErrUnknownStrategy, strategy)
	}
}

func validateInput(in AllocationInput) error {
	if len(in.Boards) == 0 {
		return contract.NewPlanError(contract.ErrNoBoards, "at least one board is required")
	}
	if len(in.Participants) == 0 {
		return contract.NewPlanError(contract.ErrNoParticipants, "at least one participant is required")
	}
	if len(in.Occurrences) == 0 {
		return contract.NewPlanError(contract.ErrNoOccurrences, "at least one scenario row is required")
	}
	return nil
}

// assignRandom reshuffles the participants for every occurrence and deals
// them to the boards, wrapping when there are fewer participants than boards.
func assignRandom(in AllocationInput, rng *rand.Rand) []domain.PlanRow {
	pool := append([]string(nil), in.Participants...)
	rows := make([]domain.PlanRow, 0, len(in.Occurrences))
	for _, occ := range in.Occurrences {
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		assignment := make(domain.Assignment, len(in.Boards))
		for b := range in.Boards {
			assignment[b] = pool[b%len(pool)]
		}
		rows = append(rows, domain.PlanRow{Occurrence: occ, Assignment: assignment})
	}
	return rows
}

// assignRoundRobin gives board b of occurrence s the participant at
// (b + s) mod len(participants).
func assignRoundRobin(in AllocationInput) []domain.PlanRow {
	n := len(in.Participants)
	rows := make([]domain.PlanRow, 0, len(in.Occurrences))
	for s, occ := range in.Occurrences {
		assignment := make(domain.Assignment, len(in.Boards))
		for b := range in.Boards {
			assignment[b] = in.Participants[(b+s)%n]
		}
		rows = append(rows, domain.PlanRow{Occurrence: occ, Assignment: assignment})
	}
	return rows
}

// assignBalanced greedily picks, per board, the participant minimizing
// total load plus load on that board. Ties go to the earliest participant in
// registry order. Counters update immediately, so later boards of the same
// occurrence see earlier picks.
func assignBalanced(in AllocationInput) []domain.PlanRow {
	total := make([]int, len(in.Participants))
	pair := make([][]int, len(in.Participants))
	for p := range pair {
		pair[p] = make([]int, len(in.Boards))
	}

	rows := make([]domain.PlanRow, 0, len(in.Occurrences))
	for _, occ := range in.Occurrences {
		assignment := make(domain.Assignment, len(in.Boards))
		for b := range in.Boards {
			best := 0
			bestScore := total[0] + pair[0][b]
			for p := 1; p < len(in.Participants); p++ {
				if score := total[p] + pair[p][b]; score < bestScore {
					best, bestScore = p, score
				}
			}
			assignment[b] = in.Participants[best]
			total[best]++
			pair[best][b]++
		}
		rows = append(rows, domain.PlanRow{Occurrence: occ, Assignment: assignment})
	}
	return rows
}

// assignLatinSquare fills the first len(boards) occurrences with a cyclic
// Latin square, then fills the remainder by drawing random participants that
// are not yet saturated.
func assignLatinSquare(in AllocationInput, rng *rand.Rand) ([]domain.PlanRow, error) {
	n := len(in.Boards)
	m := len(in.Occurrences)
	if len(in.Participants) != n {
		return nil, contract.NewPlanError(contract.ErrSizeMismatch,
			fmt.Sprintf("latin square needs as many participants as boards (%d participants, %d boards)", len(in.Participants), n))
	}
	if m < n {
		return nil, contract.NewPlanError(contract.ErrTooFewOccurrences,
			fmt.Sprintf("latin square needs at least %d occurrences (got %d)", n, m))
	}

	rows := make([]domain.PlanRow, 0, m)
	for row := 0; row < n; row++ {
		assignment := make(domain.Assignment, n)
		for col := 0; col < n; col++ {
			assignment[col] = in.Participants[(row+col)%n]
		}
		rows = append(rows, domain.PlanRow{Occurrence: in.Occurrences[row], Assignment: assignment})
	}

	usage := make(map[string]int, len(in.Participants))
	for _, p := range in.Participants {
		usage[p] = n
	}
	for row := n; row < m; row++ {
		var available []string
		for _, p := range in.Participants {
			if usage[p] < m {
				available = append(available, p)
			}
		}
		if len(available) < n {
			return nil, contract.NewPlanError(contract.ErrInsufficientParticipants,
				fmt.Sprintf("insufficient remaining participants at row %d (%d available, %d needed)", row, len(available), n))
		}
		rng.Shuffle(len(available), func(i, j int) { available[i], available[j] = available[j], available[i] })
		chosen := make(domain.Assignment, n)
		copy(chosen, available[:n])
		for _, p := range chosen {
			usage[p]++
		}
		rows = append(rows, domain.PlanRow{Occurrence: in.Occurrences[row], Assignment: chosen})
	}
	return rows, nil
}
