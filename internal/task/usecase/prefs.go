package usecase

import (
	"context"

	"study-task-tracker/internal/task"
)

// SetReminderEnabled persists the reminder preference under its own key,
// independent of the task collection.
func (uc *implUseCase) SetReminderEnabled(ctx context.Context, enabled bool) error {
	if err := uc.repo.SetBool(ctx, task.KeyReminderEnabled, enabled); err != nil {
		uc.l.Errorf(ctx, "uc.SetReminderEnabled SetBool: %v", err)
		return &task.StorageIOError{Op: "write", Key: task.KeyReminderEnabled, Err: err}
	}
	return nil
}

// IsReminderEnabled reads the reminder preference. Absent defaults to true.
func (uc *implUseCase) IsReminderEnabled(ctx context.Context) (bool, error) {
	enabled, ok, err := uc.repo.GetBool(ctx, task.KeyReminderEnabled)
	if err != nil {
		uc.l.Errorf(ctx, "uc.IsReminderEnabled GetBool: %v", err)
		return false, &task.StorageIOError{Op: "read", Key: task.KeyReminderEnabled, Err: err}
	}
	if !ok {
		return true, nil
	}
	return enabled, nil
}
