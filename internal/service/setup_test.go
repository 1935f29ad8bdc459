package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/roster/internal/config"
	"github.com/alexanderramin/roster/internal/db"
	"github.com/alexanderramin/roster/internal/repository"
	"github.com/alexanderramin/roster/internal/scheduler"
	"github.com/alexanderramin/roster/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db         *sql.DB
	uow        db.UnitOfWork
	registries repository.RegistryRepo
	scenarios  repository.ScenarioRepo
	settings   repository.SettingsRepo
	plans      repository.PlanRepo

	registry RegistryService
	rows     ScenarioService
	planner  PlanService
}

// newTestEnv opens a fresh session seeded with the default configuration
// plus the given participants.
func newTestEnv(t *testing.T, participants ...string) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	env := &testEnv{
		db:         database,
		uow:        testutil.NewTestUoW(database),
		registries: repository.NewSQLiteRegistryRepo(database),
		scenarios:  repository.NewSQLiteScenarioRepo(database),
		settings:   repository.NewSQLiteSettingsRepo(database),
		plans:      repository.NewSQLitePlanRepo(database),
	}
	env.registry = NewRegistryService(env.registries, "ATC")
	env.rows = NewScenarioService(env.scenarios, env.registries)
	env.planner = NewPlanService(env.registries, env.scenarios, env.settings, env.plans, env.uow, scheduler.NewRand(7))

	cfg := config.Default().Session
	cfg.Participants = participants
	require.NoError(t, NewSessionSeeder(env.uow).Seed(context.Background(), cfg))
	return env
}

// withPlanner swaps the plan service for one using uow, e.g. a failing one.
func (e *testEnv) withPlanner(uow db.UnitOfWork) PlanService {
	return NewPlanService(e.registries, e.scenarios, e.settings, e.plans, uow, scheduler.NewRand(7))
}
