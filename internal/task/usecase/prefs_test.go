package usecase

import (
	"context"
	"errors"
	"testing"

	"study-task-tracker/internal/task"
)

func TestReminderPreference(t *testing.T) {
	ctx := context.Background()

	t.Run("Absent flag defaults to enabled", func(t *testing.T) {
		uc := newTestUseCase(newFakeBlobStore())

		enabled, err := uc.IsReminderEnabled(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !enabled {
			t.Errorf("expected default enabled")
		}
	})

	t.Run("Set and read back", func(t *testing.T) {
		repo := newFakeBlobStore()
		uc := newTestUseCase(repo)

		if err := uc.SetReminderEnabled(ctx, false); err != nil {
			t.Fatalf("set error: %v", err)
		}
		enabled, err := uc.IsReminderEnabled(ctx)
		if err != nil {
			t.Fatalf("get error: %v", err)
		}
		if enabled {
			t.Errorf("expected disabled after SetReminderEnabled(false)")
		}

		// Stored under its own key, independent of the task collection.
		if _, ok := repo.strings[task.KeyTasks]; ok {
			t.Errorf("preference write must not touch the tasks key")
		}
		if _, ok := repo.bools[task.KeyReminderEnabled]; !ok {
			t.Errorf("expected preference stored under %q", task.KeyReminderEnabled)
		}
	})

	t.Run("IO failures surface StorageIOError", func(t *testing.T) {
		repo := newFakeBlobStore()
		repo.setBoolFunc = func(key string, value bool) error {
			return errors.New("write refused")
		}
		repo.getBoolFunc = func(key string) (bool, bool, error) {
			return false, false, errors.New("read refused")
		}
		uc := newTestUseCase(repo)

		var ioErr *task.StorageIOError
		if err := uc.SetReminderEnabled(ctx, true); !errors.As(err, &ioErr) {
			t.Errorf("expected StorageIOError on write, got %v", err)
		}
		if _, err := uc.IsReminderEnabled(ctx); !errors.As(err, &ioErr) {
			t.Errorf("expected StorageIOError on read, got %v", err)
		}
	})
}
