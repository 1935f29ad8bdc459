package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/roster/internal/config"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/export"
	"github.com/alexanderramin/roster/internal/repository"
)

type exportService struct {
	plans      PlanService
	registries repository.RegistryRepo
	cfg        config.ExportConfig
	observer   UseCaseObserver
}

func NewExportService(plans PlanService, registries repository.RegistryRepo, cfg config.ExportConfig, observers ...UseCaseObserver) ExportService {
	return &exportService{plans: plans, registries: registries, cfg: cfg, observer: useCaseObserverOrNoop(observers)}
}

// Export writes the current plan. It fails with NO_PLAN before the first
// successful generation.
func (s *exportService) Export(ctx context.Context, req ExportRequest) (res *ExportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "export-plan", startedAt, fields, &err)

	path := domain.CoalesceStr(req.Path, s.cfg.Path)
	format := req.Format
	if format == "" {
		if format, err = export.DetectFormat(path); err != nil {
			return nil, err
		}
	}
	fields["path"] = path
	fields["format"] = string(format)

	view, err := s.plans.Summary(ctx)
	if err != nil {
		return nil, err
	}
	participants, err := s.registries.List(ctx, domain.RegistryParticipants)
	if err != nil {
		return nil, err
	}
	doc := &export.Document{
		Plan:         view.Plan,
		Tally:        view.Tally,
		Participants: participants,
		Palette:      export.Palette(s.cfg.Palette),
		PlanSheet:    s.cfg.PlanSheet,
		SummarySheet: s.cfg.SummarySheet,
	}
	if err := export.WriteFile(path, format, doc); err != nil {
		return nil, fmt.Errorf("exporting plan: %w", err)
	}
	return &ExportResult{Path: path, Format: format, Rows: len(view.Plan.Rows)}, nil
}
