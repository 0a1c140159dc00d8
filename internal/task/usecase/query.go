package usecase

import (
	"context"
	"sort"
	"time"

	"study-task-tracker/internal/model"
	"study-task-tracker/pkg/dateutil"
)

// TasksForDay returns the tasks due on the same calendar day as date, in
// store order. Pure; operates on the given snapshot.
func TasksForDay(tasks []model.Task, date time.Time) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if dateutil.SameDay(t.DueDate, date) {
			out = append(out, t)
		}
	}
	return out
}

// DatesWithTasksInMonth returns the sorted distinct day-of-month numbers that
// have at least one task due in the given month of the given year. Day
// numbers always fall within the month's real calendar length.
func DatesWithTasksInMonth(tasks []model.Task, year int, month time.Month) []int {
	limit := dateutil.DaysInMonth(year, month)
	seen := map[int]bool{}
	for _, t := range tasks {
		if t.DueDate.Year() != year || t.DueDate.Month() != month {
			continue
		}
		if day := t.DueDate.Day(); day >= 1 && day <= limit {
			seen[day] = true
		}
	}

	days := make([]int, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// SortForDisplay orders a day view for presentation: incomplete tasks before
// completed ones, ties broken by original store order. The input is not
// modified.
func SortForDisplay(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return !out[i].IsCompleted && out[j].IsCompleted
	})
	return out
}

func (uc *implUseCase) TasksForDay(ctx context.Context, date time.Time) []model.Task {
	return TasksForDay(uc.snapshot(), date)
}

// TasksForDate serves calendar-cell selection; the matching rule is the same
// as TasksForDay.
func (uc *implUseCase) TasksForDate(ctx context.Context, date time.Time) []model.Task {
	return TasksForDay(uc.snapshot(), date)
}

func (uc *implUseCase) DatesWithTasksInMonth(ctx context.Context, year int, month time.Month) []int {
	return DatesWithTasksInMonth(uc.snapshot(), year, month)
}
