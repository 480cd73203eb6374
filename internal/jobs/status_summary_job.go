package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatusSummaryJob logs the order book summary on a schedule.
type StatusSummaryJob struct {
	handler  queries.GetSystemStatusQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStatusSummaryJob(
	handler queries.GetSystemStatusQueryHandler,
	schedule string,
	logger *slog.Logger,
) *StatusSummaryJob {
	return &StatusSummaryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_summary_job"),
	}
}

func (j *StatusSummaryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status summary job started", "schedule", j.schedule)
	return nil
}

func (j *StatusSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Status summary job stopped")
}

func (j *StatusSummaryJob) run(ctx context.Context) {
	status, err := j.handler.Handle(ctx, queries.NewGetSystemStatusQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Status summary job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Order book summary",
		"total", status.TotalOrders,
		"pending", status.Pending,
		"processing", status.Processing,
		"shipped", status.Shipped,
		"delivered", status.Delivered,
		"cancelled", status.Cancelled,
		"revenue", status.TotalRevenue.String(),
	)
}
