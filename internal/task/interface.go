package task

import (
	"context"
	"time"

	"study-task-tracker/internal/model"
)

// UseCase is the business logic interface for the study task domain.
// It owns the authoritative in-memory collection and writes every mutation
// through to persistence before returning.
type UseCase interface {
	// Load populates the collection from persistence. An absent blob yields
	// an empty collection; a corrupt blob yields *StorageCorruptionError.
	Load(ctx context.Context) ([]model.Task, error)

	// Save persists the current collection as one whole write under the
	// tasks key, replacing any prior value.
	Save(ctx context.Context) error

	// Tasks returns a read-only snapshot of the collection in store order.
	Tasks(ctx context.Context) []model.Task

	// Add appends a task and persists. The task must carry a non-empty,
	// unused ID and a non-empty title; violations return an error wrapping
	// ErrPrecondition.
	Add(ctx context.Context, t model.Task) error

	// Update replaces the task whose ID matches, then persists. An unknown
	// ID is a no-op: Update never inserts.
	Update(ctx context.Context, t model.Task) error

	// Remove deletes the task whose ID matches, then persists. Removing an
	// unknown ID is a no-op, not an error.
	Remove(ctx context.Context, id string) error

	// TasksForDay returns the tasks due on the same calendar day as date,
	// in store order.
	TasksForDay(ctx context.Context, date time.Time) []model.Task

	// TasksForDate is the calendar-cell selection path; same matching rule
	// as TasksForDay.
	TasksForDate(ctx context.Context, date time.Time) []model.Task

	// DatesWithTasksInMonth returns the sorted day-of-month numbers that
	// have at least one task due in the given month.
	DatesWithTasksInMonth(ctx context.Context, year int, month time.Month) []int

	// FindDueReminder returns the first incomplete task whose reminder time
	// falls within the look-ahead window from now, or nil. At most one task
	// per call. Callers gate on IsReminderEnabled themselves.
	FindDueReminder(ctx context.Context, now time.Time) *model.Task

	// SetReminderEnabled persists the reminder preference.
	SetReminderEnabled(ctx context.Context, enabled bool) error

	// IsReminderEnabled reads the reminder preference; absent means true.
	IsReminderEnabled(ctx context.Context) (bool, error)
}
