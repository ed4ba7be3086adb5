// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. The only job today is the backlog monitor,
// which samples the pending grouping view once per minute and logs its
// per-tier counts for operators.
package jobs

import (
	"fmt"
	"log/slog"

	"shipping/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	backlogMonitorJob *BacklogMonitorJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getOrderGroupsHandler queries.GetOrderGroupsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		backlogMonitorJob: NewBacklogMonitorJob(getOrderGroupsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.backlogMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start backlog monitor job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.backlogMonitorJob.Stop()
}
