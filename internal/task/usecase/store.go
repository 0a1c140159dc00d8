package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"study-task-tracker/internal/model"
	"study-task-tracker/internal/task"
	"study-task-tracker/internal/task/codec"
	"study-task-tracker/pkg/gcalendar"
)

// Load reads the task blob from persistence and replaces the in-memory
// collection. An absent blob is an empty collection, not an error.
func (uc *implUseCase) Load(ctx context.Context) ([]model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	raw, ok, err := uc.repo.GetString(ctx, task.KeyTasks)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Load GetString: %v", err)
		return nil, &task.StorageIOError{Op: "read", Key: task.KeyTasks, Err: err}
	}
	if !ok {
		uc.tasks = nil
		return nil, nil
	}

	var records []codec.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, &task.StorageCorruptionError{Key: task.KeyTasks, Err: err}
	}

	decoded, err := codec.DecodeAll(records)
	if err != nil {
		return nil, &task.StorageCorruptionError{Key: task.KeyTasks, Err: err}
	}

	uc.tasks = decoded

	out := make([]model.Task, len(uc.tasks))
	copy(out, uc.tasks)
	return out, nil
}

// Save persists the current collection. Exposed for callers that loaded and
// want to force a write; the mutators already write through.
func (uc *implUseCase) Save(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.saveLocked(ctx)
}

// saveLocked writes the whole collection as one blob. Callers must hold uc.mu.
func (uc *implUseCase) saveLocked(ctx context.Context) error {
	data, err := json.Marshal(codec.EncodeAll(uc.tasks))
	if err != nil {
		return fmt.Errorf("failed to encode task collection: %w", err)
	}
	if err := uc.repo.SetString(ctx, task.KeyTasks, string(data)); err != nil {
		uc.l.Errorf(ctx, "uc.saveLocked SetString: %v", err)
		return &task.StorageIOError{Op: "write", Key: task.KeyTasks, Err: err}
	}
	return nil
}

// Tasks returns a read-only snapshot of the collection in store order.
func (uc *implUseCase) Tasks(ctx context.Context) []model.Task {
	return uc.snapshot()
}

// Add appends t and writes through. Empty ID, empty title and duplicate ID
// all violate the caller contract and return an error wrapping
// task.ErrPrecondition.
func (uc *implUseCase) Add(ctx context.Context, t model.Task) error {
	uc.mu.Lock()

	if t.ID == "" {
		uc.mu.Unlock()
		return fmt.Errorf("%w: task id is empty", task.ErrPrecondition)
	}
	if t.Title == "" {
		uc.mu.Unlock()
		return fmt.Errorf("%w: task title is empty", task.ErrPrecondition)
	}
	for _, existing := range uc.tasks {
		if existing.Same(t) {
			uc.mu.Unlock()
			return fmt.Errorf("%w: task id %q already exists", task.ErrPrecondition, t.ID)
		}
	}

	uc.tasks = append(uc.tasks, t)
	err := uc.saveLocked(ctx)
	uc.mu.Unlock()
	if err != nil {
		return err
	}

	uc.exportCalendarEvent(ctx, t)
	return nil
}

// Update replaces the task whose ID matches t.ID and writes through.
// An unknown ID is a no-op: Update never inserts.
func (uc *implUseCase) Update(ctx context.Context, t model.Task) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i, existing := range uc.tasks {
		if existing.Same(t) {
			uc.tasks[i] = t
			return uc.saveLocked(ctx)
		}
	}

	uc.l.Debugf(ctx, "uc.Update: no task with id %q, nothing to do", t.ID)
	return nil
}

// Remove deletes the task whose ID matches and writes through. Removing an
// unknown ID is a no-op.
func (uc *implUseCase) Remove(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i, existing := range uc.tasks {
		if existing.ID == id {
			uc.tasks = append(uc.tasks[:i], uc.tasks[i+1:]...)
			return uc.saveLocked(ctx)
		}
	}

	uc.l.Debugf(ctx, "uc.Remove: no task with id %q, nothing to do", id)
	return nil
}

// exportCalendarEvent pushes a newly added task with a reminder to Google
// Calendar. Best effort: a failed export never fails the Add.
func (uc *implUseCase) exportCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.ReminderTime == nil {
		return
	}

	event, err := uc.calendar.CreateStudyEvent(ctx, gcalendar.StudyEventRequest{
		CalendarID:   uc.calendarID,
		Title:        t.Title,
		Notes:        t.Description,
		DueDate:      t.DueDate,
		ReminderTime: t.ReminderTime,
		Timezone:     uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Add: calendar export failed for task %q: %v", t.ID, err)
		return
	}
	uc.l.Infof(ctx, "uc.Add: exported task %q as calendar event %s", t.ID, event.ID)
}
