package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"lifecycle/internal/core/application/usecases/queries"
	"lifecycle/internal/core/domain/services"
)

// DefaultReportSchedule runs the portfolio report at the top of every hour.
const DefaultReportSchedule = "0 0 * * * *"

// DashboardQueryHandler builds the portfolio dashboard.
type DashboardQueryHandler interface {
	Handle(ctx context.Context, query queries.GetDashboardQuery) (services.Dashboard, error)
}

// PortfolioReportJob periodically recomputes the dashboard and logs the
// per status totals.
type PortfolioReportJob struct {
	handler  DashboardQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPortfolioReportJob creates the report job. schedule is a six field cron
// expression with seconds; an empty schedule means DefaultReportSchedule.
func NewPortfolioReportJob(handler DashboardQueryHandler, schedule string, logger *slog.Logger) *PortfolioReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	return &PortfolioReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "portfolio_report_job"),
	}
}

// Start registers the report on the schedule and starts the scheduler.
func (j *PortfolioReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Portfolio report job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Portfolio report job started", "schedule", j.schedule)
	return nil
}

// Run builds the dashboard once and logs it.
func (j *PortfolioReportJob) Run(ctx context.Context) error {
	dashboard, err := j.handler.Handle(ctx, queries.NewGetDashboardQuery())
	if err != nil {
		return err
	}

	for _, row := range dashboard.ByStatus {
		if row.Orders == 0 {
			continue
		}
		j.logger.InfoContext(ctx, "Portfolio status totals",
			"status", row.Status.String(),
			"orders", row.Orders,
			"order_value", row.OrderValue.String(),
			"total_cost", row.TotalCost.String(),
			"actual_profit", row.ActualProfit.String(),
		)
	}

	j.logger.InfoContext(ctx, "Portfolio report",
		"orders", dashboard.Total.Orders,
		"order_value", dashboard.Total.OrderValue.String(),
		"total_cost", dashboard.Total.TotalCost.String(),
		"actual_profit", dashboard.Total.ActualProfit.String(),
		"profit_margin", dashboard.ProfitMargin.StringFixed(2),
	)
	return nil
}

// Stop stops the scheduler. Running reports are not interrupted.
func (j *PortfolioReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Portfolio report job stopped")
}
