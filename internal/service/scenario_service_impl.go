package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/repository"
)

// Placeholders used for a new row when the matching registry is empty.
const (
	PlaceholderScenario = "Scenario?"
	PlaceholderDay      = "Day?"
	PlaceholderTimeslot = "Timeslot?"
)

type scenarioService struct {
	scenarios  repository.ScenarioRepo
	registries repository.RegistryRepo
	observer   UseCaseObserver
}

func NewScenarioService(scenarios repository.ScenarioRepo, registries repository.RegistryRepo, observers ...UseCaseObserver) ScenarioService {
	return &scenarioService{
		scenarios:  scenarios,
		registries: registries,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *scenarioService) List(ctx context.Context) ([]domain.ScenarioTemplate, error) {
	return s.scenarios.List(ctx)
}

// Add appends a row. Blank fields default to the first standard scenario,
// day and timeslot, and the repeat count to 1.
func (s *scenarioService) Add(ctx context.Context, in RowInput) (row *domain.ScenarioTemplate, err error) {
	startedAt := time.Now()
	fields := map[string]any{"name": in.Name, "day": in.Day, "timeslot": in.Timeslot, "repeat": in.Repeat}
	defer observe(ctx, s.observer, "row-add", startedAt, fields, &err)

	if err := checkRepeat(in.Repeat); err != nil {
		return nil, err
	}
	defaults, err := s.defaults(ctx)
	if err != nil {
		return nil, err
	}
	row, err = domain.NewScenarioTemplate(
		domain.CoalesceStr(strings.TrimSpace(in.Name), defaults.Name),
		domain.CoalesceStr(strings.TrimSpace(in.Day), defaults.Day),
		domain.CoalesceStr(strings.TrimSpace(in.Timeslot), defaults.Timeslot),
		max(in.Repeat, 1),
	)
	if err != nil {
		return nil, err
	}
	if err := s.scenarios.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("adding scenario row: %w", err)
	}
	return row, nil
}

func (s *scenarioService) Update(ctx context.Context, position int, in RowInput) (row *domain.ScenarioTemplate, err error) {
	startedAt := time.Now()
	fields := map[string]any{"position": position}
	defer observe(ctx, s.observer, "row-update", startedAt, fields, &err)

	if err := checkRepeat(in.Repeat); err != nil {
		return nil, err
	}
	row, err = s.at(ctx, position)
	if err != nil {
		return nil, err
	}
	row.Name = domain.CoalesceStr(strings.TrimSpace(in.Name), row.Name)
	row.Day = domain.CoalesceStr(strings.TrimSpace(in.Day), row.Day)
	row.Timeslot = domain.CoalesceStr(strings.TrimSpace(in.Timeslot), row.Timeslot)
	if in.Repeat > 0 {
		row.RepeatCount = in.Repeat
	}
	if err := s.scenarios.Update(ctx, row); err != nil {
		return nil, fmt.Errorf("updating scenario row %d: %w", position, err)
	}
	return row, nil
}

func (s *scenarioService) Remove(ctx context.Context, position int) (row *domain.ScenarioTemplate, err error) {
	startedAt := time.Now()
	fields := map[string]any{"position": position}
	defer observe(ctx, s.observer, "row-remove", startedAt, fields, &err)

	row, err = s.at(ctx, position)
	if err != nil {
		return nil, err
	}
	if err := s.scenarios.Delete(ctx, row.ID); err != nil {
		return nil, fmt.Errorf("removing scenario row %d: %w", position, err)
	}
	return row, nil
}

func (s *scenarioService) at(ctx context.Context, position int) (*domain.ScenarioTemplate, error) {
	rows, err := s.scenarios.List(ctx)
	if err != nil {
		return nil, err
	}
	if position < 1 || position > len(rows) {
		return nil, fmt.Errorf("scenario row %d (have %d): %w", position, len(rows), domain.ErrNotFound)
	}
	row := rows[position-1]
	return &row, nil
}

func (s *scenarioService) defaults(ctx context.Context) (domain.ScenarioTemplate, error) {
	first := func(kind domain.RegistryKind, fallback string) (string, error) {
		names, err := s.registries.List(ctx, kind)
		if err != nil {
			return "", err
		}
		return domain.FirstOr(names, fallback), nil
	}
	var d domain.ScenarioTemplate
	var err error
	if d.Name, err = first(domain.RegistryStandardScenarios, PlaceholderScenario); err != nil {
		return d, err
	}
	if d.Day, err = first(domain.RegistryDays, PlaceholderDay); err != nil {
		return d, err
	}
	if d.Timeslot, err = first(domain.RegistryTimeslots, PlaceholderTimeslot); err != nil {
		return d, err
	}
	return d, nil
}

// checkRepeat bounds interactive repeat counts. Zero means "keep/default".
func checkRepeat(n int) error {
	if n < 0 || n > domain.MaxRepeatCount {
		return fmt.Errorf("%w: must be between 1 and %d (got %d)", domain.ErrInvalidRepeatCount, domain.MaxRepeatCount, n)
	}
	return nil
}
