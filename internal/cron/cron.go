package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/linskybing/campus-helpdesk/internal/notify"
	robfig "github.com/robfig/cron/v3"
)

// PurgeSpec runs the outbox purge daily at 02:15.
const PurgeSpec = "15 2 * * *"

// StartOutboxTasks schedules outbox delivery on pollSpec and the retention
// purge once a day. Overlapping runs are skipped. The caller stops the
// returned scheduler.
func StartOutboxTasks(relay *notify.Relay, pollSpec string, retentionDays int) (*robfig.Cron, error) {
	c := robfig.New(robfig.WithChain(robfig.SkipIfStillRunning(robfig.DefaultLogger)))

	if _, err := c.AddFunc(pollSpec, func() { runRelay(relay) }); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(PurgeSpec, func() { runPurge(relay, retentionDays) }); err != nil {
		return nil, err
	}

	slog.Info("outbox tasks scheduled", "poll", pollSpec, "purge", PurgeSpec, "retention_days", retentionDays)
	c.Start()
	return c, nil
}

func runRelay(relay *notify.Relay) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stats, err := relay.RunOnce(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "outbox relay run failed", "error", err)
		return
	}
	if stats.Delivered+stats.Failed > 0 {
		slog.InfoContext(ctx, "outbox relay run", "delivered", stats.Delivered, "failed", stats.Failed)
	}
}

func runPurge(relay *notify.Relay, retentionDays int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := relay.Purge(ctx, retentionDays); err != nil {
		slog.ErrorContext(ctx, "outbox purge failed", "error", err)
	}
}
