package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/google/uuid"
)

// Names returns prefix1..prefixN.
func Names(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return out
}

// Template options
type TemplateOption func(*domain.ScenarioTemplate)

func WithDay(d string) TemplateOption {
	return func(t *domain.ScenarioTemplate) {
		t.Day = d
	}
}

func WithTimeslot(s string) TemplateOption {
	return func(t *domain.ScenarioTemplate) {
		t.Timeslot = s
	}
}

func WithRepeat(n int) TemplateOption {
	return func(t *domain.ScenarioTemplate) {
		t.RepeatCount = n
	}
}

func NewTestTemplate(name string, opts ...TemplateOption) *domain.ScenarioTemplate {
	t := &domain.ScenarioTemplate{
		ID:          uuid.New().String(),
		Name:        name,
		Day:         "Pazartesi",
		Timeslot:    "09:00-10:00",
		RepeatCount: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Plan options
type PlanOption func(*domain.Plan)

func WithStrategy(s domain.Strategy) PlanOption {
	return func(p *domain.Plan) {
		p.Strategy = s
	}
}

func WithGeneratedAt(at time.Time) PlanOption {
	return func(p *domain.Plan) {
		p.GeneratedAt = at
	}
}

// NewTestPlan builds a round-robin shaped plan over the given boards and
// participants with one row per scenario.
func NewTestPlan(boards, participants, scenarios []string, opts ...PlanOption) *domain.Plan {
	p := &domain.Plan{
		ID:          uuid.New().String(),
		Strategy:    domain.StrategyRoundRobin,
		GeneratedAt: time.Now().UTC(),
		Boards:      append([]string(nil), boards...),
	}
	for s, name := range scenarios {
		a := make(domain.Assignment, len(boards))
		for b := range boards {
			a[b] = participants[(b+s)%len(participants)]
		}
		p.Rows = append(p.Rows, domain.PlanRow{
			Occurrence: domain.Occurrence{Day: "Pazartesi", Timeslot: "09:00-10:00", Scenario: name},
			Assignment: a,
		})
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
