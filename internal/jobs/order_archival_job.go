package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderArchivalJob manages the scheduled archival of received orders.
// Runs every minute and moves every RECEIVED order to ARCHIVED.
type OrderArchivalJob struct {
	handler commands.ArchiveReceivedOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderArchivalJob creates a new job for archiving received orders.
// Uses ArchiveReceivedOrdersCommandHandler to process the sweep every minute.
func NewOrderArchivalJob(handler commands.ArchiveReceivedOrdersCommandHandler, logger *slog.Logger) *OrderArchivalJob {
	return &OrderArchivalJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_archival_job"),
	}
}

// Start begins the order archival job to run every minute.
func (j *OrderArchivalJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewArchiveReceivedOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order archival job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order archival job started (running every minute)")
	return nil
}

// Stop stops the order archival job.
func (j *OrderArchivalJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order archival job stopped")
}
