package job

import (
	"context"
	"time"

	"daily-planner/internal/model"
	"daily-planner/internal/recurring"
	"daily-planner/pkg/datemath"
	pkgLog "daily-planner/pkg/log"
)

const defaultInterval = time.Minute

// Job applies recurring templates once per civil day.
type Job struct {
	l        pkgLog.Logger
	uc       recurring.UseCase
	dates    *datemath.Parser
	interval time.Duration
	now      func() time.Time

	lastApplied time.Time
}

// New creates a Job checking for a new day every interval (default one minute).
func New(l pkgLog.Logger, uc recurring.UseCase, dates *datemath.Parser, interval time.Duration) *Job {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Job{
		l:        l,
		uc:       uc,
		dates:    dates,
		interval: interval,
		now:      time.Now,
	}
}

// Run blocks until ctx is done. Today is applied immediately.
func (j *Job) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.tick(ctx)
		}
	}
}

// tick applies today's templates unless that already succeeded.
func (j *Job) tick(ctx context.Context) {
	today := j.dates.StartOfDay(j.now())
	if today.Equal(j.lastApplied) {
		return
	}

	out, err := j.uc.Apply(ctx, model.Scope{Source: model.SourceRecurring}, today)
	if err != nil {
		j.l.Errorf(ctx, "recurring job: apply %s: %v", today.Format(time.DateOnly), err)
		return
	}
	j.lastApplied = today

	for _, f := range out.Failures {
		j.l.Warnf(ctx, "recurring job: template %s %q not applied: %v", f.TemplateID, f.Line, f.Err)
	}
}
