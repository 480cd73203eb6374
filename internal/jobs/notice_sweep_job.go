package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// NoticeSweeper drops expired notices and reports how many went.
type NoticeSweeper interface {
	Sweep() int
}

// NoticeSweepJob expires transient notices on a schedule.
type NoticeSweepJob struct {
	board    NoticeSweeper
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNoticeSweepJob takes a six-field cron schedule (seconds first).
func NewNoticeSweepJob(board NoticeSweeper, schedule string, logger *slog.Logger) *NoticeSweepJob {
	return &NoticeSweepJob{
		board:    board,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "notice_sweep_job"),
	}
}

func (j *NoticeSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notice sweep job started", "schedule", j.schedule)
	return nil
}

func (j *NoticeSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notice sweep job stopped")
}

func (j *NoticeSweepJob) run(ctx context.Context) {
	if n := j.board.Sweep(); n > 0 {
		j.logger.DebugContext(ctx, "Expired notices removed", "count", n)
	}
}
