// Package jobs runs background work on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// GapFiller is the slice of the entry service the gap-fill job needs.
type GapFiller interface {
	FillGaps(ctx context.Context, userID string) (int, error)
	ActiveUsers() []string
}

// GapFillJob extends every signed-in user's timeline with the default
// location up to today, so the day after a run is never left uncovered.
type GapFillJob struct {
	svc     GapFiller
	log     *slog.Logger
	timeout time.Duration
}

// NewGapFillJob returns a job with a one-minute budget per run.
func NewGapFillJob(svc GapFiller, log *slog.Logger) *GapFillJob {
	return &GapFillJob{svc: svc, log: log, timeout: time.Minute}
}

// Run fills gaps for every active user and returns the number of stays
// created. A failure for one user is logged and does not stop the others.
func (j *GapFillJob) Run(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	total := 0
	for _, userID := range j.svc.ActiveUsers() {
		if ctx.Err() != nil {
			j.log.Warn("gap fill run cut short", "error", ctx.Err())
			break
		}
		n, err := j.svc.FillGaps(ctx, userID)
		if err != nil {
			j.log.Error("gap fill failed", "user_id", userID, "error", err)
			continue
		}
		total += n
	}
	j.log.Info("gap fill run complete", "stays", total)
	return total
}

// Schedule registers job on a new cron scheduler using spec, a standard
// five-field expression or a descriptor such as "@daily". The scheduler is
// returned unstarted.
func Schedule(spec string, job *GapFillJob, log *slog.Logger) (*cron.Cron, error) {
	l := slogAdapter{log: log}
	c := cron.New(
		cron.WithLogger(l),
		cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l)),
	)
	if _, err := c.AddFunc(spec, func() { job.Run(context.Background()) }); err != nil {
		return nil, fmt.Errorf("jobs.Schedule: %q: %w", spec, err)
	}
	return c, nil
}

// slogAdapter satisfies cron.Logger.
type slogAdapter struct {
	log *slog.Logger
}

func (a slogAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.log.Debug("cron: "+msg, keysAndValues...)
}

func (a slogAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	a.log.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
