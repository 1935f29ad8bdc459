package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/alexanderramin/roster/internal/contract"
	"github.com/alexanderramin/roster/internal/db"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/repository"
	"github.com/alexanderramin/roster/internal/scheduler"
	"github.com/google/uuid"
)

type planService struct {
	registries repository.RegistryRepo
	scenarios  repository.ScenarioRepo
	settings   repository.SettingsRepo
	plans      repository.PlanRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver

	mu  sync.Mutex
	rng *rand.Rand
}

func NewPlanService(
	registries repository.RegistryRepo,
	scenarios repository.ScenarioRepo,
	settings repository.SettingsRepo,
	plans repository.PlanRepo,
	uow db.UnitOfWork,
	rng *rand.Rand,
	observers ...UseCaseObserver,
) PlanService {
	if rng == nil {
		rng = scheduler.NewRand(0)
	}
	return &planService{
		registries: registries,
		scenarios:  scenarios,
		settings:   settings,
		plans:      plans,
		uow:        uow,
		rng:        rng,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// Strategy returns the selected strategy, Round Robin when none was set.
func (s *planService) Strategy(ctx context.Context) (domain.Strategy, error) {
	v, ok, err := s.settings.Get(ctx, repository.SettingStrategy)
	if err != nil {
		return "", err
	}
	if !ok {
		return domain.StrategyRoundRobin, nil
	}
	return domain.ParseStrategy(v)
}

func (s *planService) SetStrategy(ctx context.Context, strategy domain.Strategy) error {
	parsed, err := domain.ParseStrategy(string(strategy))
	if err != nil {
		return err
	}
	return s.settings.Set(ctx, repository.SettingStrategy, string(parsed))
}

// snapshot is the read-only input of one generation run.
type snapshot struct {
	participants []string
	boards       []string
	days         []string
	timeslots    []string
	templates    []domain.ScenarioTemplate
}

func (s *planService) snapshot(ctx context.Context) (*snapshot, error) {
	var snap snapshot
	lists := []struct {
		kind domain.RegistryKind
		dst  *[]string
	}{
		{domain.RegistryParticipants, &snap.participants},
		{domain.RegistryBoards, &snap.boards},
		{domain.RegistryDays, &snap.days},
		{domain.RegistryTimeslots, &snap.timeslots},
	}
	for _, l := range lists {
		names, err := s.registries.List(ctx, l.kind)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.kind.Plural(), err)
		}
		*l.dst = names
	}
	templates, err := s.scenarios.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading scenario rows: %w", err)
	}
	snap.templates = templates
	return &snap, nil
}

// Generate builds a plan from the current session state and stores it in
// place of the previous one. Nothing is written unless the whole plan was
// computed, so a failed run keeps the prior plan.
func (s *planService) Generate(ctx context.Context, req contract.GenerateRequest) (resp *contract.GenerateResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "generate-plan", startedAt, fields, &err)

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	strategy := req.Strategy
	if strategy == "" {
		if strategy, err = s.Strategy(ctx); err != nil {
			return nil, err
		}
	} else if strategy, err = domain.ParseStrategy(string(strategy)); err != nil {
		return nil, err
	}
	fields["strategy"] = string(strategy)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	occurrences := scheduler.ExpandAndSort(snap.templates, snap.days, snap.timeslots)
	fields["occurrences"] = len(occurrences)
	fields["participants"] = len(snap.participants)
	fields["boards"] = len(snap.boards)

	in := scheduler.AllocationInput{
		Occurrences:  occurrences,
		Participants: snap.participants,
		Boards:       snap.boards,
	}
	s.mu.Lock()
	rows, err := scheduler.Allocate(strategy, in, s.rng)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	tally, err := scheduler.Summarize(rows, snap.participants, snap.boards)
	if err != nil {
		return nil, err
	}

	plan := &domain.Plan{
		ID:          uuid.New().String(),
		Strategy:    strategy,
		GeneratedAt: now,
		Boards:      append([]string(nil), snap.boards...),
		Rows:        rows,
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePlanRepo(tx).Replace(ctx, plan)
	})
	if err != nil {
		return nil, fmt.Errorf("storing plan: %w", err)
	}

	return &contract.GenerateResponse{
		Plan:            plan,
		Tally:           tally,
		OccurrenceCount: len(rows),
		Warnings:        generationWarnings(snap, strategy),
	}, nil
}

func (s *planService) Current(ctx context.Context) (*domain.Plan, error) {
	plan, err := s.plans.Current(ctx)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, contract.NewPlanError(contract.ErrNoPlan, "no plan has been generated yet")
	}
	return plan, nil
}

// Summary tallies the stored plan against the current participant registry.
func (s *planService) Summary(ctx context.Context) (*SummaryView, error) {
	plan, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	participants, err := s.registries.List(ctx, domain.RegistryParticipants)
	if err != nil {
		return nil, err
	}
	tally, err := scheduler.Summarize(plan.Rows, participants, plan.Boards)
	if err != nil {
		return nil, err
	}
	return &SummaryView{Plan: plan, Tally: tally, Fairness: scheduler.ComputeFairness(tally)}, nil
}

// generationWarnings lists inputs that produced a plan but probably not the
// one the user expects.
func generationWarnings(snap *snapshot, strategy domain.Strategy) []string {
	var warnings []string
	if strategy != domain.StrategyLatin && len(snap.participants) < len(snap.boards) {
		warnings = append(warnings, fmt.Sprintf(
			"%d participants for %d boards: participants repeat within an occurrence",
			len(snap.participants), len(snap.boards)))
	}
	seen := map[string]bool{}
	for _, t := range snap.templates {
		if domain.IndexOf(snap.days, t.Day) < 0 && !seen["d:"+t.Day] {
			seen["d:"+t.Day] = true
			warnings = append(warnings, fmt.Sprintf("day %q is not registered; its rows sort last", t.Day))
		}
		if domain.IndexOf(snap.timeslots, t.Timeslot) < 0 && !seen["t:"+t.Timeslot] {
			seen["t:"+t.Timeslot] = true
			warnings = append(warnings, fmt.Sprintf("timeslot %q is not registered; its rows sort last within the day", t.Timeslot))
		}
	}
	return warnings
}
