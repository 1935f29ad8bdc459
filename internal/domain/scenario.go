package domain

import (
	"fmt"
	"strings"
)

// MaxRepeatCount bounds repeat counts entered through the interactive surface.
const MaxRepeatCount = 20

// ScenarioTemplate is one editable row of the scenario list. Rows are not
// unique; ID gives them identity inside a session.
type ScenarioTemplate struct {
	ID          string
	Position    int
	Name        string
	Day         string
	Timeslot    string
	RepeatCount int
}

// NewScenarioTemplate builds a validated template row.
func NewScenarioTemplate(name, day, timeslot string, repeat int) (*ScenarioTemplate, error) {
	t := &ScenarioTemplate{
		Name:        strings.TrimSpace(name),
		Day:         strings.TrimSpace(day),
		Timeslot:    strings.TrimSpace(timeslot),
		RepeatCount: repeat,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the row invariants. Day and timeslot are not required to be
// registered; unregistered values sort last.
func (t *ScenarioTemplate) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("scenario name: %w", ErrEmptyName)
	}
	if t.Day == "" {
		return fmt.Errorf("scenario day: %w", ErrEmptyName)
	}
	if t.Timeslot == "" {
		return fmt.Errorf("scenario timeslot: %w", ErrEmptyName)
	}
	if t.RepeatCount < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidRepeatCount, t.RepeatCount)
	}
	return nil
}

// Occurrence is one concrete (day, timeslot, scenario) instance to staff.
type Occurrence struct {
	Day      string
	Timeslot string
	Scenario string
}

func (o Occurrence) String() string {
	return o.Day + " " + o.Timeslot + " " + o.Scenario
}
