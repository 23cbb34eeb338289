// Package jobs provides scheduled background tasks for the order lifecycle
// service.
//
// Jobs are cron based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// PortfolioReportJob recomputes the dashboard on a schedule (hourly by
// default, REPORT_SCHEDULE overrides it) and writes the per status totals
// and the portfolio profit margin to the structured log.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(dashboardHandler, cfg.ReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and retried on the next tick. An invalid
// schedule fails StartAll.
package jobs
