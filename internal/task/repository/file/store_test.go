package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"study-task-tracker/internal/task/repository/file"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing file reads as empty", func(t *testing.T) {
		store := file.New(filepath.Join(t.TempDir(), "data.json"))

		_, ok, err := store.GetString(ctx, "tasks")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Errorf("expected absent key on fresh store")
		}
	})

	t.Run("String round trip", func(t *testing.T) {
		store := file.New(filepath.Join(t.TempDir(), "data.json"))

		if err := store.SetString(ctx, "tasks", `[{"id":"a"}]`); err != nil {
			t.Fatalf("set error: %v", err)
		}
		got, ok, err := store.GetString(ctx, "tasks")
		if err != nil || !ok {
			t.Fatalf("get failed: ok=%v err=%v", ok, err)
		}
		if got != `[{"id":"a"}]` {
			t.Errorf("unexpected value: %s", got)
		}
	})

	t.Run("Bool round trip", func(t *testing.T) {
		store := file.New(filepath.Join(t.TempDir(), "data.json"))

		if err := store.SetBool(ctx, "reminder_enabled", false); err != nil {
			t.Fatalf("set error: %v", err)
		}
		got, ok, err := store.GetBool(ctx, "reminder_enabled")
		if err != nil || !ok {
			t.Fatalf("get failed: ok=%v err=%v", ok, err)
		}
		if got {
			t.Errorf("expected false")
		}
	})

	t.Run("Set replaces prior value", func(t *testing.T) {
		store := file.New(filepath.Join(t.TempDir(), "data.json"))

		store.SetString(ctx, "tasks", "first")
		store.SetString(ctx, "tasks", "second")

		got, _, _ := store.GetString(ctx, "tasks")
		if got != "second" {
			t.Errorf("expected latest value, got %s", got)
		}
	})

	t.Run("Keys are independent", func(t *testing.T) {
		store := file.New(filepath.Join(t.TempDir(), "data.json"))

		store.SetString(ctx, "tasks", "[]")
		store.SetBool(ctx, "reminder_enabled", true)

		s, ok, _ := store.GetString(ctx, "tasks")
		if !ok || s != "[]" {
			t.Errorf("tasks value lost after writing another key")
		}
		b, ok, _ := store.GetBool(ctx, "reminder_enabled")
		if !ok || !b {
			t.Errorf("bool value lost after writing another key")
		}
	})

	t.Run("Survives reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")

		first := file.New(path)
		first.SetString(ctx, "tasks", "persisted")

		second := file.New(path)
		got, ok, err := second.GetString(ctx, "tasks")
		if err != nil || !ok || got != "persisted" {
			t.Errorf("expected value to survive reopen: got=%q ok=%v err=%v", got, ok, err)
		}
	})

	t.Run("Wrong value type errors", func(t *testing.T) {
		store := file.New(filepath.Join(t.TempDir(), "data.json"))

		store.SetBool(ctx, "flag", true)
		if _, _, err := store.GetString(ctx, "flag"); err == nil {
			t.Errorf("expected type mismatch error")
		}
	})

	t.Run("Corrupt file errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		os.WriteFile(path, []byte("{not json"), 0o644)

		store := file.New(path)
		if _, _, err := store.GetString(ctx, "tasks"); err == nil {
			t.Errorf("expected parse error on corrupt file")
		}
	})
}
