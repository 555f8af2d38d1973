// Package jobs provides scheduled background reports for the shop.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// run read-only queries, so they never change the store.
//
// # Jobs
//
//  1. RevenueReportJob - logs the store statistics with the revenue of delivered orders
//  2. LowStockAlertJob - logs a warning for every physical product at or below the stock threshold
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.Config{
//		RevenueReportSchedule: "0 0 * * * *",
//		LowStockSchedule:      "0 */15 * * * *",
//		LowStockThreshold:     5,
//	}, statisticsHandler, listProductsHandler, formatter, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return fmt.Errorf("start jobs: %w", err)
//	}
//	defer jobManager.StopAll() // waits for a running report
//
// An empty schedule disables the job.
package jobs
