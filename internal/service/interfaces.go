package service

import (
	"context"

	"github.com/alexanderramin/roster/internal/config"
	"github.com/alexanderramin/roster/internal/contract"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/export"
	"github.com/alexanderramin/roster/internal/scheduler"
)

// RegistryService mutates the ordered name registries. Duplicate adds,
// removals of missing names and invalid renames are reported through a
// rejected MutationResult and leave the registry unchanged; the error return
// is reserved for store failures.
type RegistryService interface {
	List(ctx context.Context, kind domain.RegistryKind) ([]string, error)
	Add(ctx context.Context, kind domain.RegistryKind, name string) (domain.MutationResult, error)
	// AddParticipant adds name, or the next free prefixed name when name is blank.
	AddParticipant(ctx context.Context, name string) (domain.MutationResult, error)
	Rename(ctx context.Context, kind domain.RegistryKind, oldName, newName string) (domain.MutationResult, error)
	Remove(ctx context.Context, kind domain.RegistryKind, name string) (domain.MutationResult, error)
}

// RowInput describes a scenario row to add or the fields to change on one.
// Empty strings and a zero Repeat keep the current (or default) value.
type RowInput struct {
	Name     string
	Day      string
	Timeslot string
	Repeat   int
}

// ScenarioService edits the scenario template rows. Rows are addressed by
// 1-based position in list order.
type ScenarioService interface {
	List(ctx context.Context) ([]domain.ScenarioTemplate, error)
	Add(ctx context.Context, in RowInput) (*domain.ScenarioTemplate, error)
	Update(ctx context.Context, position int, in RowInput) (*domain.ScenarioTemplate, error)
	Remove(ctx context.Context, position int) (*domain.ScenarioTemplate, error)
}

// SummaryView is the tally of the current plan with its fairness figures.
type SummaryView struct {
	Plan     *domain.Plan
	Tally    *domain.Tally
	Fairness scheduler.Fairness
}

// PlanService selects the strategy, generates plans and summarizes them.
type PlanService interface {
	Strategy(ctx context.Context) (domain.Strategy, error)
	SetStrategy(ctx context.Context, s domain.Strategy) error
	Generate(ctx context.Context, req contract.GenerateRequest) (*contract.GenerateResponse, error)
	// Current returns the stored plan or a NO_PLAN PlanError.
	Current(ctx context.Context) (*domain.Plan, error)
	Summary(ctx context.Context) (*SummaryView, error)
}

// ExportService writes the current plan to a file.
type ExportService interface {
	Export(ctx context.Context, req ExportRequest) (*ExportResult, error)
}

// ExportRequest selects the output file. An empty Format is detected from
// the path extension.
type ExportRequest struct {
	Path   string
	Format export.Format
}

// ExportResult reports what was written.
type ExportResult struct {
	Path   string
	Format export.Format
	Rows   int
}

// SessionSeeder loads the initial registries and rows of a session.
type SessionSeeder interface {
	Seed(ctx context.Context, cfg config.SessionConfig) error
}
