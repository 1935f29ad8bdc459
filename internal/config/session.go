package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/knadh/koanf/v2"
)

// ScenarioRow is one configured scenario template row.
type ScenarioRow struct {
	Name     string `json:"name"`
	Day      string `json:"day"`
	Timeslot string `json:"timeslot"`
	Repeat   int    `json:"repeat"`
}

// SessionConfig seeds the registries and scenario rows of a new session.
type SessionConfig struct {
	Participants      []string      `json:"participants"`
	Boards            []string      `json:"boards"`
	Days              []string      `json:"days"`
	Timeslots         []string      `json:"timeslots"`
	StandardScenarios []string      `json:"standard_scenarios"`
	Scenarios         []ScenarioRow `json:"scenarios"`
	Strategy          string        `json:"strategy"`
	ParticipantPrefix string        `json:"participant_prefix"`
}

var (
	defaultBoards    = []string{"SWN", "SWS", "SWF", "SCF", "SEF", "SEN", "SEC", "SES", "SAG"}
	defaultDays      = []string{"Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi", "Pazar"}
	defaultTimeslots = []string{"09:00-10:00", "10:30-11:30", "13:00-14:00", "14:30-15:30"}
	defaultStandard  = []string{
		"Kuzey Doğu Peak",
		"Kuzey Batı Peak",
		"Güney Doğu Peak",
		"Güney Batı Peak",
		"Ters Kuzey",
		"Ters Güney",
	}
	defaultScenarios = []ScenarioRow{
		{Name: "Kuzey Doğu Peak", Day: "Pazartesi", Timeslot: "09:00-10:00", Repeat: 1},
		{Name: "Kuzey Batı Peak", Day: "Pazartesi", Timeslot: "10:30-11:30", Repeat: 1},
		{Name: "Güney Doğu Peak", Day: "Pazartesi", Timeslot: "13:00-14:00", Repeat: 1},
		{Name: "Güney Batı Peak", Day: "Pazartesi", Timeslot: "14:30-15:30", Repeat: 1},
	}
)

// SetDefaults fills every key that was not explicitly set. With k == nil all
// defaults apply. An explicitly empty list stays empty.
func (c *SessionConfig) SetDefaults(k *koanf.Koanf) {
	set := func(key string) bool { return k != nil && k.Exists(key) }
	if !set("session.boards") {
		c.Boards = clone(defaultBoards)
	}
	if !set("session.days") {
		c.Days = clone(defaultDays)
	}
	if !set("session.timeslots") {
		c.Timeslots = clone(defaultTimeslots)
	}
	if !set("session.standard_scenarios") {
		c.StandardScenarios = clone(defaultStandard)
	}
	if !set("session.scenarios") {
		c.Scenarios = append([]ScenarioRow(nil), defaultScenarios...)
	}
	if c.Participants == nil {
		c.Participants = []string{}
	}
	if c.Strategy == "" {
		c.Strategy = string(domain.StrategyRoundRobin)
	}
	if c.ParticipantPrefix == "" {
		c.ParticipantPrefix = domain.DefaultParticipantPrefix
	}
	for i := range c.Scenarios {
		if c.Scenarios[i].Repeat == 0 {
			c.Scenarios[i].Repeat = 1
		}
	}
}

// Validate checks registry lists for blanks and duplicates, the strategy name
// and every scenario row. An empty strategy means the default.
func (c *SessionConfig) Validate() error {
	lists := []struct {
		kind  domain.RegistryKind
		names []string
	}{
		{domain.RegistryParticipants, c.Participants},
		{domain.RegistryBoards, c.Boards},
		{domain.RegistryDays, c.Days},
		{domain.RegistryTimeslots, c.Timeslots},
		{domain.RegistryStandardScenarios, c.StandardScenarios},
	}
	var errs []error
	for _, l := range lists {
		seen := make(map[string]bool, len(l.names))
		for _, n := range l.names {
			name := strings.TrimSpace(n)
			if name == "" {
				errs = append(errs, fmt.Errorf("%s: %w", l.kind.Plural(), domain.ErrEmptyName))
				continue
			}
			if seen[name] {
				errs = append(errs, fmt.Errorf("%s %q: %w", l.kind.Plural(), name, domain.ErrDuplicateName))
			}
			seen[name] = true
		}
	}
	if c.Strategy != "" {
		if _, err := domain.ParseStrategy(c.Strategy); err != nil {
			errs = append(errs, err)
		}
	}
	for i, row := range c.Scenarios {
		if _, err := domain.NewScenarioTemplate(row.Name, row.Day, row.Timeslot, row.Repeat); err != nil {
			errs = append(errs, fmt.Errorf("scenarios[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Templates converts the configured rows to domain templates.
func (c *SessionConfig) Templates() ([]*domain.ScenarioTemplate, error) {
	out := make([]*domain.ScenarioTemplate, 0, len(c.Scenarios))
	for i, row := range c.Scenarios {
		t, err := domain.NewScenarioTemplate(row.Name, row.Day, row.Timeslot, row.Repeat)
		if err != nil {
			return nil, fmt.Errorf("scenarios[%d]: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// Registries returns the configured names keyed by registry, trimmed.
func (c *SessionConfig) Registries() map[domain.RegistryKind][]string {
	return map[domain.RegistryKind][]string{
		domain.RegistryParticipants:      trimAll(c.Participants),
		domain.RegistryBoards:            trimAll(c.Boards),
		domain.RegistryDays:              trimAll(c.Days),
		domain.RegistryTimeslots:         trimAll(c.Timeslots),
		domain.RegistryStandardScenarios: trimAll(c.StandardScenarios),
	}
}

func clone(s []string) []string {
	return append([]string{}, s...)
}

func trimAll(s []string) []string {
	out := make([]string, 0, len(s))
	for _, v := range s {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
