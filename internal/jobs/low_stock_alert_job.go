package jobs

import (
	"context"
	"log/slog"

	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/product"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob warns about physical products that need restocking.
type LowStockAlertJob struct {
	schedule  string
	threshold int
	handler   queries.ListProductsQueryHandler
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewLowStockAlertJob(
	schedule string,
	threshold int,
	handler queries.ListProductsQueryHandler,
	logger *slog.Logger,
) *LowStockAlertJob {
	return &LowStockAlertJob{
		schedule:  schedule,
		threshold: threshold,
		handler:   handler,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_alert_job"),
	}
}

// Start schedules the check. It does nothing when the schedule is empty.
func (j *LowStockAlertJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "Low stock alert job disabled")
		return nil
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started",
		"schedule", j.schedule,
		"threshold", j.threshold,
	)
	return nil
}

// Run checks stock once and returns how many products are low.
func (j *LowStockAlertJob) Run(ctx context.Context) int {
	query, err := queries.NewListProductsQuery(
		queries.WithKind(product.KindPhysical),
		queries.WithMaxStock(j.threshold),
	)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock alert misconfigured", "error", err)
		return 0
	}

	low, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock alert failed", "error", err)
		return 0
	}

	for _, p := range low {
		j.logger.WarnContext(ctx, "Low stock",
			"product_id", p.ID,
			"name", p.Name,
			"stock", p.Physical.Stock,
			"threshold", j.threshold,
		)
	}
	return len(low)
}

// Stop stops the schedule and waits for a running check.
func (j *LowStockAlertJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
