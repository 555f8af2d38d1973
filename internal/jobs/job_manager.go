package jobs

import (
	"fmt"
	"log/slog"

	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/pkg/money"
)

// Config holds the cron expressions (with seconds) of every job.
type Config struct {
	RevenueReportSchedule string
	LowStockSchedule      string
	LowStockThreshold     int
}

// JobManager owns the report jobs of the shop.
type JobManager struct {
	revenueReportJob *RevenueReportJob
	lowStockAlertJob *LowStockAlertJob
}

func NewJobManager(
	cfg Config,
	statistics queries.GetStatisticsQueryHandler,
	products queries.ListProductsQueryHandler,
	formatter money.Formatter,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		revenueReportJob: NewRevenueReportJob(cfg.RevenueReportSchedule, statistics, formatter, logger),
		lowStockAlertJob: NewLowStockAlertJob(cfg.LowStockSchedule, cfg.LowStockThreshold, products, logger),
	}
}

// StartAll schedules every enabled job. On failure the jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	if err := jm.revenueReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start revenue report job: %w", err)
	}

	if err := jm.lowStockAlertJob.Start(); err != nil {
		jm.revenueReportJob.Stop()
		return fmt.Errorf("failed to start low stock alert job: %w", err)
	}

	return nil
}

// StopAll stops all jobs and waits for running reports to finish.
func (jm *JobManager) StopAll() {
	jm.lowStockAlertJob.Stop()
	jm.revenueReportJob.Stop()
}
