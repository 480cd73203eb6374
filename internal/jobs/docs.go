// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. NoticeSweepJob - drops expired notices from the notice board (default every second)
// 2. StatusSummaryJob - logs order counts and revenue (default every 30 seconds)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(board, summaryHandler, jobs.Schedules{
//		NoticeSweep:   "* * * * * *",
//		StatusSummary: "*/30 * * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Jobs run on cron's own goroutines. They only touch the order book through
// its read lock and the notice board through its mutex.
package jobs
