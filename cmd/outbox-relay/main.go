package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/linskybing/campus-helpdesk/internal/config"
	"github.com/linskybing/campus-helpdesk/internal/config/db"
	"github.com/linskybing/campus-helpdesk/internal/cron"
	"github.com/linskybing/campus-helpdesk/internal/migrations"
	"github.com/linskybing/campus-helpdesk/internal/notify"
	"github.com/linskybing/campus-helpdesk/internal/repository"
)

func main() {
	config.LoadConfig()
	db.Init()

	if err := migrations.AutoMigrate(db.DB); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var dispatcher notify.Dispatcher = notify.LogDispatcher{}
	if config.NotifyWebhookURL != "" {
		dispatcher = notify.NewWebhookDispatcher(config.NotifyWebhookURL, 10*time.Second)
	} else {
		slog.Warn("NOTIFY_WEBHOOK_URL not set, outbox events will only be logged")
	}

	relay := notify.NewRelay(repository.NewOutboxRepo(db.DB), dispatcher, config.OutboxBatchSize)
	relay.MaxAttempts = config.OutboxMaxAttempts
	c, err := cron.StartOutboxTasks(relay, config.OutboxPollSpec, config.OutboxRetentionDays)
	if err != nil {
		slog.Error("failed to schedule outbox tasks", "error", err)
		os.Exit(1)
	}

	slog.Info("outbox relay started", "poll", config.OutboxPollSpec, "retention_days", config.OutboxRetentionDays)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	slog.Info("shutdown signal, waiting for running tasks")
	<-c.Stop().Done()
}
