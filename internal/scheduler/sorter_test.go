package scheduler

import (
	"testing"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tpl(name, day, slot string, repeat int) domain.ScenarioTemplate {
	return domain.ScenarioTemplate{Name: name, Day: day, Timeslot: slot, RepeatCount: repeat}
}

func scenarioNames(occ []domain.Occurrence) []string {
	names := make([]string, len(occ))
	for i, o := range occ {
		names[i] = o.Scenario
	}
	return names
}

func TestExpand_RepeatCount(t *testing.T) {
	occ := Expand([]domain.ScenarioTemplate{
		tpl("A", "Mon", "AM", 3),
		tpl("B", "Tue", "PM", 1),
	})

	require.Len(t, occ, 4)
	assert.Equal(t, []string{"A", "A", "A", "B"}, scenarioNames(occ))
	for _, o := range occ[:3] {
		assert.Equal(t, domain.Occurrence{Day: "Mon", Timeslot: "AM", Scenario: "A"}, o)
	}
}

func TestExpand_Empty(t *testing.T) {
	assert.Empty(t, Expand(nil))
}

func TestExpandAndSort_DayThenTimeslotThenName(t *testing.T) {
	days := []string{"Mon", "Tue"}
	slots := []string{"AM", "PM"}
	templates := []domain.ScenarioTemplate{
		tpl("X", "Tue", "AM", 1),
		tpl("Y", "Mon", "PM", 1),
		tpl("Z", "Mon", "AM", 2),
	}

	occ := ExpandAndSort(templates, days, slots)

	require.Len(t, occ, 4)
	assert.Equal(t, []string{"Z", "Z", "Y", "X"}, scenarioNames(occ))
	assert.Equal(t, "Mon", occ[0].Day)
	assert.Equal(t, "AM", occ[1].Timeslot)
	assert.Equal(t, "PM", occ[2].Timeslot)
	assert.Equal(t, "Tue", occ[3].Day)
}

func TestExpandAndSort_NameTiebreak(t *testing.T) {
	occ := ExpandAndSort([]domain.ScenarioTemplate{
		tpl("Gamma", "Mon", "AM", 1),
		tpl("Alpha", "Mon", "AM", 1),
		tpl("Beta", "Mon", "AM", 1),
	}, []string{"Mon"}, []string{"AM"})

	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, scenarioNames(occ))
}

func TestExpandAndSort_UnregisteredSortsLast(t *testing.T) {
	occ := ExpandAndSort([]domain.ScenarioTemplate{
		tpl("Late", "Holiday", "AM", 1),
		tpl("Odd", "Mon", "Night", 1),
		tpl("Early", "Mon", "AM", 1),
	}, []string{"Mon"}, []string{"AM"})

	assert.Equal(t, []string{"Early", "Odd", "Late"}, scenarioNames(occ))
}

func TestExpandAndSort_UnrankedTiesBreakByName(t *testing.T) {
	occ := ExpandAndSort([]domain.ScenarioTemplate{
		tpl("b", "Sat", "X", 1),
		tpl("a", "Sun", "Y", 1),
	}, nil, nil)

	assert.Equal(t, []string{"a", "b"}, scenarioNames(occ))
}

func TestExpandAndSort_RecomputedAgainstCurrentRegistries(t *testing.T) {
	templates := []domain.ScenarioTemplate{
		tpl("A", "Mon", "AM", 1),
		tpl("B", "Tue", "AM", 1),
	}

	first := ExpandAndSort(templates, []string{"Mon", "Tue"}, []string{"AM"})
	assert.Equal(t, []string{"A", "B"}, scenarioNames(first))

	// Reordering the day registry reorders the plan.
	second := ExpandAndSort(templates, []string{"Tue", "Mon"}, []string{"AM"})
	assert.Equal(t, []string{"B", "A"}, scenarioNames(second))
}

func TestRanker_Unranked(t *testing.T) {
	r := NewRanker([]string{"Mon"}, []string{"AM"})
	assert.Equal(t, 0, r.DayRank("Mon"))
	assert.Equal(t, UnrankedPosition, r.DayRank("Tue"))
	assert.Equal(t, UnrankedPosition, r.TimeslotRank("PM"))
}
