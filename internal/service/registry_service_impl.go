package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/repository"
)

type registryService struct {
	registries repository.RegistryRepo
	prefix     string
	observer   UseCaseObserver
}

func NewRegistryService(registries repository.RegistryRepo, participantPrefix string, observers ...UseCaseObserver) RegistryService {
	return &registryService{
		registries: registries,
		prefix:     domain.CoalesceStr(participantPrefix, domain.DefaultParticipantPrefix),
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *registryService) List(ctx context.Context, kind domain.RegistryKind) ([]string, error) {
	return s.registries.List(ctx, kind)
}

func (s *registryService) Add(ctx context.Context, kind domain.RegistryKind, name string) (res domain.MutationResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"registry": string(kind), "name": name}
	defer func() {
		fields["applied"] = res.Applied
		observe(ctx, s.observer, "registry-add", startedAt, fields, &err)
	}()

	trimmed, nerr := domain.NormalizeName(name)
	if nerr != nil {
		return domain.Rejected(kind, name, nerr), nil
	}
	exists, err := s.registries.Contains(ctx, kind, trimmed)
	if err != nil {
		return domain.MutationResult{}, err
	}
	if exists {
		return domain.Rejected(kind, trimmed, domain.ErrDuplicateName), nil
	}
	if err := s.registries.Append(ctx, kind, trimmed); err != nil {
		return domain.MutationResult{}, fmt.Errorf("adding %s: %w", kind, err)
	}
	return domain.Applied(kind, trimmed, ""), nil
}

func (s *registryService) AddParticipant(ctx context.Context, name string) (domain.MutationResult, error) {
	if name != "" {
		return s.Add(ctx, domain.RegistryParticipants, name)
	}
	existing, err := s.registries.List(ctx, domain.RegistryParticipants)
	if err != nil {
		return domain.MutationResult{}, err
	}
	return s.Add(ctx, domain.RegistryParticipants, domain.NextParticipantName(existing, s.prefix))
}

func (s *registryService) Rename(ctx context.Context, kind domain.RegistryKind, oldName, newName string) (res domain.MutationResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"registry": string(kind), "name": oldName, "new_name": newName}
	defer func() {
		fields["applied"] = res.Applied
		observe(ctx, s.observer, "registry-rename", startedAt, fields, &err)
	}()

	oldName = trimmedOrRaw(oldName)
	found, err := s.registries.Contains(ctx, kind, oldName)
	if err != nil {
		return domain.MutationResult{}, err
	}
	if !found {
		return domain.Rejected(kind, oldName, domain.ErrNotFound), nil
	}
	trimmed, nerr := domain.NormalizeName(newName)
	if nerr != nil {
		return domain.Rejected(kind, oldName, nerr), nil
	}
	taken, err := s.registries.Contains(ctx, kind, trimmed)
	if err != nil {
		return domain.MutationResult{}, err
	}
	if taken {
		res = domain.Rejected(kind, oldName, domain.ErrDuplicateName)
		res.NewName = trimmed
		return res, nil
	}
	if err := s.registries.Rename(ctx, kind, oldName, trimmed); err != nil {
		return domain.MutationResult{}, fmt.Errorf("renaming %s: %w", kind, err)
	}
	return domain.Applied(kind, oldName, trimmed), nil
}

func (s *registryService) Remove(ctx context.Context, kind domain.RegistryKind, name string) (res domain.MutationResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"registry": string(kind), "name": name}
	defer func() {
		fields["applied"] = res.Applied
		observe(ctx, s.observer, "registry-remove", startedAt, fields, &err)
	}()

	name = trimmedOrRaw(name)
	found, err := s.registries.Contains(ctx, kind, name)
	if err != nil {
		return domain.MutationResult{}, err
	}
	if !found {
		return domain.Rejected(kind, name, domain.ErrNotFound), nil
	}
	if err := s.registries.Remove(ctx, kind, name); err != nil {
		return domain.MutationResult{}, fmt.Errorf("removing %s: %w", kind, err)
	}
	return domain.Applied(kind, name, ""), nil
}

// trimmedOrRaw trims name for lookups; a blank name is kept so the rejection
// reports what was typed.
func trimmedOrRaw(name string) string {
	if t, err := domain.NormalizeName(name); err == nil {
		return t
	}
	return name
}
