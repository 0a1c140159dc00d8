package usecase

import (
	"testing"
	"time"

	"study-task-tracker/internal/model"
)

func dayTask(id string, due time.Time) model.Task {
	return model.Task{ID: id, Title: "task " + id, DueDate: due}
}

func TestTasksForDay(t *testing.T) {
	tasks := []model.Task{
		dayTask("morning", time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)),
		dayTask("other-day", time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)),
		dayTask("evening", time.Date(2024, 3, 1, 22, 30, 0, 0, time.UTC)),
		dayTask("other-month", time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)),
		dayTask("other-year", time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)),
	}

	got := TasksForDay(tasks, time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC))

	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	// Store order is preserved regardless of time of day.
	if got[0].ID != "morning" || got[1].ID != "evening" {
		t.Errorf("expected store order [morning evening], got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestTasksForDayEmpty(t *testing.T) {
	got := TasksForDay(nil, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	if len(got) != 0 {
		t.Errorf("expected no tasks, got %d", len(got))
	}
}

func TestDatesWithTasksInMonth(t *testing.T) {
	tests := []struct {
		name  string
		tasks []model.Task
		year  int
		month time.Month
		want  []int
	}{
		{
			name: "Distinct days, duplicates collapse",
			tasks: []model.Task{
				dayTask("a", time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)),
				dayTask("b", time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC)),
				dayTask("c", time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC)),
				dayTask("d", time.Date(2024, 4, 5, 8, 0, 0, 0, time.UTC)),
			},
			year:  2024,
			month: time.March,
			want:  []int{5, 12},
		},
		{
			name: "Leap-year February includes day 29",
			tasks: []model.Task{
				dayTask("leap", time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC)),
			},
			year:  2024,
			month: time.February,
			want:  []int{29},
		},
		{
			name: "December and January stay in their own years",
			tasks: []model.Task{
				dayTask("dec", time.Date(2023, 12, 31, 8, 0, 0, 0, time.UTC)),
				dayTask("jan", time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)),
			},
			year:  2024,
			month: time.January,
			want:  []int{1},
		},
		{
			name:  "Empty month",
			tasks: nil,
			year:  2024,
			month: time.June,
			want:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DatesWithTasksInMonth(tt.tasks, tt.year, tt.month)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}
}

func TestSortForDisplay(t *testing.T) {
	done := func(m model.Task) model.Task {
		m.IsCompleted = true
		return m
	}
	day := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		done(dayTask("done-1", day)),
		dayTask("open-1", day),
		done(dayTask("done-2", day)),
		dayTask("open-2", day),
	}

	got := SortForDisplay(tasks)

	wantOrder := []string{"open-1", "open-2", "done-1", "done-2"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s (full order %v)", i, id, got[i].ID, got)
		}
	}

	// Input order stays untouched.
	if tasks[0].ID != "done-1" {
		t.Errorf("SortForDisplay mutated its input")
	}
}
