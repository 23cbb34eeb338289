package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	portfolioReportJob *PortfolioReportJob
}

// NewJobManager creates a job manager with the portfolio report running on
// reportSchedule.
func NewJobManager(dashboard DashboardQueryHandler, reportSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		portfolioReportJob: NewPortfolioReportJob(dashboard, reportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.portfolioReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start portfolio report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.portfolioReportJob.Stop()
}
