package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/group"
	"shipping/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// BacklogMonitorJob periodically reads the pending grouping view and logs
// its per-tier group counts. The job only observes; the view itself stays
// uncached and is always rebuilt on demand.
type BacklogMonitorJob struct {
	handler queries.GetOrderGroupsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBacklogMonitorJob creates a job that samples the pending backlog once
// per minute.
func NewBacklogMonitorJob(handler queries.GetOrderGroupsQueryHandler, logger *slog.Logger) *BacklogMonitorJob {
	return &BacklogMonitorJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "backlog_monitor_job"),
	}
}

// Start begins the backlog monitor job to run every minute.
func (j *BacklogMonitorJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOrderGroupsQuery(order.Pending)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Backlog monitor could not build query", "error", queryErr)
			return
		}

		view, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Backlog monitor failed", "error", handleErr)
			return
		}

		attrs := []any{"groups", len(view.Groups)}
		for _, tier := range group.AllTiers() {
			attrs = append(attrs, tier.String(), len(view.Buckets[tier]))
		}
		j.logger.InfoContext(ctx, "Pending backlog", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog monitor job started (running every minute)")
	return nil
}

// Stop stops the backlog monitor job.
func (j *BacklogMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog monitor job stopped")
}
