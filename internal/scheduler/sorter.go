package scheduler

import (
	"sort"

	"github.com/alexanderramin/roster/internal/domain"
)

// UnrankedPosition is the rank given to a day or timeslot that is not in
// its registry. It sorts after every registered entry.
const UnrankedPosition = 9999

// Ranker maps registry entries to their zero-based positions.
type Ranker struct {
	days      map[string]int
	timeslots map[string]int
}

// NewRanker snapshots the current day and timeslot registries.
func NewRanker(days, timeslots []string) Ranker {
	r := Ranker{
		days:      make(map[string]int, len(days)),
		timeslots: make(map[string]int, len(timeslots)),
	}
	for i, d := range days {
		if _, ok := r.days[d]; !ok {
			r.days[d] = i
		}
	}
	for i, s := range timeslots {
		if _, ok := r.timeslots[s]; !ok {
			r.timeslots[s] = i
		}
	}
	return r
}

// DayRank returns the day position, or UnrankedPosition.
func (r Ranker) DayRank(day string) int {
	if i, ok := r.days[day]; ok {
		return i
	}
	return UnrankedPosition
}

// TimeslotRank returns the timeslot position, or UnrankedPosition.
func (r Ranker) TimeslotRank(slot string) int {
	if i, ok := r.timeslots[slot]; ok {
		return i
	}
	return UnrankedPosition
}

// Expand turns each template into RepeatCount identical occurrences, keeping
// template order.
func Expand(templates []domain.ScenarioTemplate) []domain.Occurrence {
	total := 0
	for _, t := range templates {
		if t.RepeatCount > 0 {
			total += t.RepeatCount
		}
	}
	out := make([]domain.Occurrence, 0, total)
	for _, t := range templates {
		for i := 0; i < t.RepeatCount; i++ {
			out = append(out, domain.Occurrence{
				Day:      t.Day,
				Timeslot: t.Timeslot,
				Scenario: t.Name,
			})
		}
	}
	return out
}

// CanonicalSort orders occurrences by the deterministic canonical rules:
// 1. Day rank (unregistered last)
// 2. Timeslot rank (unregistered last)
// 3. Scenario name: lexical ascending
// Remaining ties keep their input order.
func CanonicalSort(occurrences []domain.Occurrence, r Ranker) {
	sort.SliceStable(occurrences, func(i, j int) bool {
		a, b := occurrences[i], occurrences[j]

		dayA, dayB := r.DayRank(a.Day), r.DayRank(b.Day)
		if dayA != dayB {
			return dayA < dayB
		}

		slotA, slotB := r.TimeslotRank(a.Timeslot), r.TimeslotRank(b.Timeslot)
		if slotA != slotB {
			return slotA < slotB
		}

		return a.Scenario < b.Scenario
	})
}

// ExpandAndSort expands templates and sorts the result against the given
// registries. Call it on every generation: registries may have changed since
// the templates were written.
func ExpandAndSort(templates []domain.ScenarioTemplate, days, timeslots []string) []domain.Occurrence {
	occ := Expand(templates)
	CanonicalSort(occ, NewRanker(days, timeslots))
	return occ
}
