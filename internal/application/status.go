package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/linskybing/campus-helpdesk/internal/cache"
	"github.com/linskybing/campus-helpdesk/internal/domain/status"
	"github.com/linskybing/campus-helpdesk/internal/repository"
	"github.com/linskybing/campus-helpdesk/pkg/types"
)

type StatusService struct {
	Repos *repository.Repos
	Cache cache.Cache
	TTL   time.Duration
}

func NewStatusService(repos *repository.Repos, c cache.Cache, ttl time.Duration) *StatusService {
	return &StatusService{
		Repos: repos,
		Cache: c,
		TTL:   ttl,
	}
}

// ListActive returns active statuses by display order, read through the cache.
func (s *StatusService) ListActive(ctx context.Context) ([]status.Status, error) {
	cached, ok, err := cache.GetJSON[[]status.Status](ctx, s.Cache, cache.KeyActiveStatuses)
	if err != nil {
		slog.WarnContext(ctx, "status cache read failed", "error", err)
	}
	if ok {
		return cached, nil
	}

	list, err := s.Repos.Status.ListActiveStatuses()
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, s.Cache, cache.KeyActiveStatuses, list, s.TTL); err != nil {
		slog.WarnContext(ctx, "status cache write failed", "error", err)
	}
	return list, nil
}

// ListActiveForFilter never fails. On error the outcome is degraded with an
// empty list.
func (s *StatusService) ListActiveForFilter(ctx context.Context) types.Outcome[[]status.Status] {
	list, err := s.ListActive(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "status filter lookup failed", "error", err)
		return types.Degraded([]status.Status{}, err)
	}
	return types.Complete(list)
}

// Resolve finds the active status for a value such as "in progress".
func (s *StatusService) Resolve(ctx context.Context, value string) (status.Status, error) {
	want := status.Normalize(value)
	if want == "" {
		return status.Status{}, ErrNotFound
	}
	list, err := s.ListActive(ctx)
	if err != nil {
		return status.Status{}, err
	}
	for _, st := range list {
		if st.Value == want {
			return st, nil
		}
	}
	return status.Status{}, ErrNotFound
}

func (s *StatusService) ListAll() ([]status.Status, error) {
	return s.Repos.Status.ListStatuses()
}

func (s *StatusService) Get(id uint) (status.Status, error) {
	st, err := s.Repos.Status.GetStatusByID(id)
	return st, mapRepoErr(err)
}

func (s *StatusService) CanDelete(id uint) (status.DeleteCheck, error) {
	st, err := s.Repos.Status.GetStatusByID(id)
	if err != nil {
		return status.DeleteCheck{}, mapRepoErr(err)
	}
	return s.retireCheck(st)
}

// retireCheck decides whether st may leave the active registry. Tickets must
// always point at an active row, and the canonical values are looked up by
// the workflow itself.
func (s *StatusService) retireCheck(st status.Status) (status.DeleteCheck, error) {
	n, err := s.Repos.Status.CountTicketsWithStatus(st.ID)
	if err != nil {
		return status.DeleteCheck{}, err
	}
	check := status.DeleteCheck{Allowed: n == 0, BlockingTicketCount: n}
	switch {
	case n > 0:
		check.Reason = fmt.Sprintf("%d tickets must be moved first", n)
	case status.IsCanonical(st.Value):
		check.Allowed = false
		check.Reason = "required by the ticket workflow"
	}
	return check, nil
}

func (s *StatusService) Create(ctx context.Context, input status.CreateStatusInput) (status.Status, error) {
	value := status.Normalize(input.Value)
	if value == "" {
		return status.Status{}, invalid("value", "value is required")
	}
	if _, err := s.Repos.Status.GetStatusByValue(value); err == nil {
		return status.Status{}, ErrDuplicate
	} else if !repository.IsNotFound(err) {
		return status.Status{}, err
	}

	st := status.Status{
		Value:           value,
		Label:           strings.TrimSpace(input.Label),
		Description:     input.Description,
		ProgressPercent: input.ProgressPercent,
		BadgeColor:      input.BadgeColor,
		IsActive:        true,
		IsFinal:         input.IsFinal,
		DisplayOrder:    input.DisplayOrder,
	}
	if err := s.Repos.Status.CreateStatus(&st); err != nil {
		return status.Status{}, mapRepoErr(err)
	}
	return st, s.invalidate(ctx)
}

func (s *StatusService) Update(ctx context.Context, id uint, input status.UpdateStatusInput) (status.Status, error) {
	st, err := s.Repos.Status.GetStatusByID(id)
	if err != nil {
		return status.Status{}, mapRepoErr(err)
	}

	if input.Label != nil {
		st.Label = strings.TrimSpace(*input.Label)
	}
	if input.Description != nil {
		st.Description = *input.Description
	}
	if input.ProgressPercent != nil {
		st.ProgressPercent = *input.ProgressPercent
	}
	if input.BadgeColor != nil {
		st.BadgeColor = *input.BadgeColor
	}
	if input.IsActive != nil {
		if st.IsActive && !*input.IsActive {
			check, err := s.retireCheck(st)
			if err != nil {
				return status.Status{}, err
			}
			if !check.Allowed {
				return status.Status{}, fmt.Errorf("%w: %s", ErrStatusInUse, check.Reason)
			}
		}
		st.IsActive = *input.IsActive
	}
	if input.IsFinal != nil {
		st.IsFinal = *input.IsFinal
	}
	if input.DisplayOrder != nil {
		st.DisplayOrder = *input.DisplayOrder
	}

	if err := s.Repos.Status.SaveStatus(&st); err != nil {
		return status.Status{}, mapRepoErr(err)
	}
	return st, s.invalidate(ctx)
}

// Delete soft-deletes a status that no ticket references.
func (s *StatusService) Delete(ctx context.Context, id uint) error {
	check, err := s.CanDelete(id)
	if err != nil {
		return err
	}
	if !check.Allowed {
		return fmt.Errorf("%w: %s", ErrStatusInUse, check.Reason)
	}
	if err := s.Repos.Status.DeleteStatus(id); err != nil {
		return err
	}
	return s.invalidate(ctx)
}

func (s *StatusService) invalidate(ctx context.Context) error {
	if err := s.Cache.Invalidate(ctx, cache.KeyActiveStatuses); err != nil {
		slog.ErrorContext(ctx, "status cache invalidation failed", "error", err)
		return fmt.Errorf("invalidate status cache: %w", err)
	}
	return nil
}
