package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/postflow-tools/internal/repository"
)

// CalendarPruneJob drops calendar entries that are no longer pending once
// they are older than the retention window.
type CalendarPruneJob struct {
	cr        repository.CalendarRepository
	retention time.Duration
	now       func() time.Time
}

func NewCalendarPruneJob(cr repository.CalendarRepository, retention time.Duration) *CalendarPruneJob {
	return &CalendarPruneJob{
		cr:        cr,
		retention: retention,
		now:       time.Now,
	}
}

func (j *CalendarPruneJob) PruneCalendar() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := j.now().Add(-j.retention)
	pruned, err := j.cr.PruneBefore(ctx, cutoff)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	if pruned > 0 {
		slog.Info("calendar pruned", "removed", pruned, "cutoff", cutoff)
	}
}
