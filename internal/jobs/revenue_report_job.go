package jobs

import (
	"context"
	"log/slog"

	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/pkg/money"

	"github.com/robfig/cron/v3"
)

// RevenueReportJob periodically logs the store statistics.
type RevenueReportJob struct {
	schedule  string
	handler   queries.GetStatisticsQueryHandler
	formatter money.Formatter
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewRevenueReportJob(
	schedule string,
	handler queries.GetStatisticsQueryHandler,
	formatter money.Formatter,
	logger *slog.Logger,
) *RevenueReportJob {
	return &RevenueReportJob{
		schedule:  schedule,
		handler:   handler,
		formatter: formatter,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "revenue_report_job"),
	}
}

// Start schedules the report. It does nothing when the schedule is empty.
func (j *RevenueReportJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "Revenue report job disabled")
		return nil
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Revenue report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *RevenueReportJob) Run(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewGetStatisticsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Revenue report failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Revenue report",
		"revenue", j.formatter.Format(stats.Revenue),
		"currency", j.formatter.Currency(),
		"orders", stats.Orders,
		"delivered", stats.OrdersByStatus["DELIVERED"],
		"cancelled", stats.OrdersByStatus["CANCELLED"],
		"products", stats.Products,
		"users", stats.Users,
	)
}

// Stop stops the schedule and waits for a running report.
func (j *RevenueReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Revenue report job stopped")
}
