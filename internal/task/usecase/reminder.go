package usecase

import (
	"context"
	"time"

	"study-task-tracker/internal/model"
	"study-task-tracker/internal/task"
	"study-task-tracker/pkg/dateutil"
)

// FindDueReminder scans tasks in store order and returns a copy of the first
// incomplete task whose reminder time lies between now and the look-ahead
// window, inclusive on both ends. At most one task per call: surfacing one
// alert at a time is the intended policy, later qualifying tasks wait for the
// next poll. Returns nil when nothing qualifies. Pure.
func FindDueReminder(tasks []model.Task, now time.Time) *model.Task {
	for _, t := range tasks {
		if t.ReminderTime == nil || t.IsCompleted {
			continue
		}
		minutes := dateutil.WholeMinutesUntil(now, *t.ReminderTime)
		if minutes >= 0 && minutes <= task.ReminderLookaheadMinutes {
			due := t
			return &due
		}
	}
	return nil
}

// FindDueReminder is the snapshot-backed form. The reminder-enabled
// preference is not consulted here; gating happens at the call site.
func (uc *implUseCase) FindDueReminder(ctx context.Context, now time.Time) *model.Task {
	return FindDueReminder(uc.snapshot(), now)
}
