package repository

import (
	"context"

	"github.com/alexanderramin/roster/internal/domain"
)

// RegistryRepo stores the ordered, duplicate-free name registries.
type RegistryRepo interface {
	List(ctx context.Context, kind domain.RegistryKind) ([]string, error)
	Contains(ctx context.Context, kind domain.RegistryKind, name string) (bool, error)
	Append(ctx context.Context, kind domain.RegistryKind, name string) error
	Rename(ctx context.Context, kind domain.RegistryKind, oldName, newName string) error
	Remove(ctx context.Context, kind domain.RegistryKind, name string) error
	ReplaceAll(ctx context.Context, kind domain.RegistryKind, names []string) error
}

// ScenarioRepo stores the editable scenario template rows in list order.
type ScenarioRepo interface {
	Create(ctx context.Context, t *domain.ScenarioTemplate) error
	GetByID(ctx context.Context, id string) (*domain.ScenarioTemplate, error)
	List(ctx context.Context) ([]domain.ScenarioTemplate, error)
	Update(ctx context.Context, t *domain.ScenarioTemplate) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// SettingsRepo stores small session-scoped key/value settings.
type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// PlanRepo holds the single current plan of the session.
type PlanRepo interface {
	// Current returns the stored plan, or nil when none has been generated.
	Current(ctx context.Context) (*domain.Plan, error)
	// Replace discards any stored plan and stores p in its place.
	Replace(ctx context.Context, p *domain.Plan) error
}
