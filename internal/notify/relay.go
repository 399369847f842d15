package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/linskybing/campus-helpdesk/internal/domain/outbox"
	"github.com/linskybing/campus-helpdesk/internal/repository"
)

// Dispatcher delivers one event. Delivery is at least once, so receivers
// dedupe on Event.ID.
type Dispatcher interface {
	Dispatch(ctx context.Context, e outbox.Event) error
}

const (
	DefaultMaxAttempts = 10
	DefaultBaseBackoff = 30 * time.Second
	DefaultMaxBackoff  = time.Hour
)

// Relay drains the outbox oldest first, retrying failures with exponential
// backoff until MaxAttempts is reached.
type Relay struct {
	Repo        repository.OutboxRepo
	Dispatcher  Dispatcher
	BatchSize   int
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
	Now         func() time.Time
}

func NewRelay(repo repository.OutboxRepo, d Dispatcher, batchSize int) *Relay {
	if batchSize <= 0 {
		batchSize = 50
	}
	return &Relay{
		Repo:        repo,
		Dispatcher:  d,
		BatchSize:   batchSize,
		MaxAttempts: DefaultMaxAttempts,
		BaseBackoff: DefaultBaseBackoff,
		MaxBackoff:  DefaultMaxBackoff,
		Now:         func() time.Time { return time.Now().UTC() },
	}
}

type RunStats struct {
	Delivered int
	Failed    int
	Dead      int
}

// Backoff returns the wait after the given number of failed attempts.
func (r *Relay) Backoff(failures int) time.Duration {
	d := r.BaseBackoff
	for i := 1; i < failures && d < r.MaxBackoff; i++ {
		d *= 2
	}
	return min(d, r.MaxBackoff)
}

// RunOnce dispatches one batch of due events. A failed event is rescheduled,
// or parked once it has used up its attempts.
func (r *Relay) RunOnce(ctx context.Context) (RunStats, error) {
	var stats RunStats
	now := r.Now()
	events, err := r.Repo.PendingEvents(now, r.BatchSize)
	if err != nil {
		return stats, fmt.Errorf("load pending events: %w", err)
	}

	for _, e := range events {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := r.Dispatcher.Dispatch(ctx, e); err != nil {
			if rerr := r.recordFailure(ctx, e, err, now, &stats); rerr != nil {
				return stats, rerr
			}
			continue
		}
		if err := r.Repo.MarkProcessed(e.ID, r.Now()); err != nil {
			return stats, fmt.Errorf("mark %s processed: %w", e.ID, err)
		}
		stats.Delivered++
	}
	return stats, nil
}

func (r *Relay) recordFailure(ctx context.Context, e outbox.Event, cause error, now time.Time, stats *RunStats) error {
	failures := e.Attempts + 1
	if r.MaxAttempts > 0 && failures >= r.MaxAttempts {
		stats.Dead++
		slog.ErrorContext(ctx, "outbox event parked after repeated failures",
			"event_id", e.ID,
			"event_type", e.EventType,
			"attempts", failures,
			"error", cause)
		if err := r.Repo.MarkDead(e.ID, cause.Error(), now); err != nil {
			return fmt.Errorf("park %s: %w", e.ID, err)
		}
		return nil
	}

	stats.Failed++
	retryAt := now.Add(r.Backoff(failures))
	slog.WarnContext(ctx, "outbox dispatch failed",
		"event_id", e.ID,
		"event_type", e.EventType,
		"attempts", failures,
		"retry_at", retryAt,
		"error", cause)
	if err := r.Repo.RecordFailure(e.ID, cause.Error(), retryAt); err != nil {
		return fmt.Errorf("record failure for %s: %w", e.ID, err)
	}
	return nil
}

// Purge removes processed events older than the retention window.
func (r *Relay) Purge(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := r.Now().AddDate(0, 0, -retentionDays)
	n, err := r.Repo.PurgeProcessed(cutoff)
	if err != nil {
		return 0, err
	}
	slog.InfoContext(ctx, "outbox purge completed", "deleted", n, "before", cutoff)
	return n, nil
}
