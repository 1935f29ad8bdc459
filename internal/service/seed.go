package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/roster/internal/config"
	"github.com/alexanderramin/roster/internal/db"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/repository"
)

type sessionSeeder struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSessionSeeder(uow db.UnitOfWork, observers ...UseCaseObserver) SessionSeeder {
	return &sessionSeeder{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// Seed replaces the registries, scenario rows and strategy with cfg in one
// transaction.
func (s *sessionSeeder) Seed(ctx context.Context, cfg config.SessionConfig) (err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"participants": len(cfg.Participants),
		"boards":       len(cfg.Boards),
		"rows":         len(cfg.Scenarios),
	}
	defer observe(ctx, s.observer, "seed-session", startedAt, fields, &err)

	if err := cfg.Validate(); err != nil {
		return err
	}
	strategy, err := domain.ParseStrategy(domain.CoalesceStr(cfg.Strategy, string(domain.StrategyRoundRobin)))
	if err != nil {
		return err
	}
	templates, err := cfg.Templates()
	if err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		registries := repository.NewSQLiteRegistryRepo(tx)
		for kind, names := range cfg.Registries() {
			if err := registries.ReplaceAll(ctx, kind, names); err != nil {
				return fmt.Errorf("seeding %s: %w", kind.Plural(), err)
			}
		}

		scenarios := repository.NewSQLiteScenarioRepo(tx)
		if err := scenarios.DeleteAll(ctx); err != nil {
			return err
		}
		for _, t := range templates {
			if err := scenarios.Create(ctx, t); err != nil {
				return fmt.Errorf("seeding scenario row %q: %w", t.Name, err)
			}
		}

		return repository.NewSQLiteSettingsRepo(tx).Set(ctx, repository.SettingStrategy, string(strategy))
	})
}
