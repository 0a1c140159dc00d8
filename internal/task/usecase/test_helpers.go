package usecase

import (
	"context"
	"sync"
	"time"

	"study-task-tracker/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeBlobStore is a map-backed blob store whose operations can be overridden
// per test via func fields.
type fakeBlobStore struct {
	mu      sync.Mutex
	strings map[string]string
	bools   map[string]bool

	getStringFunc func(key string) (string, bool, error)
	setStringFunc func(key, value string) error
	getBoolFunc   func(key string) (bool, bool, error)
	setBoolFunc   func(key string, value bool) error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{
		strings: map[string]string{},
		bools:   map[string]bool{},
	}
}

func (f *fakeBlobStore) GetString(ctx context.Context, key string) (string, bool, error) {
	if f.getStringFunc != nil {
		return f.getStringFunc(key)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.strings[key]
	return v, ok, nil
}

func (f *fakeBlobStore) SetString(ctx context.Context, key, value string) error {
	if f.setStringFunc != nil {
		return f.setStringFunc(key, value)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.strings[key] = value
	return nil
}

func (f *fakeBlobStore) GetBool(ctx context.Context, key string) (bool, bool, error) {
	if f.getBoolFunc != nil {
		return f.getBoolFunc(key)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.bools[key]
	return v, ok, nil
}

func (f *fakeBlobStore) SetBool(ctx context.Context, key string, value bool) error {
	if f.setBoolFunc != nil {
		return f.setBoolFunc(key, value)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bools[key] = value
	return nil
}

// newTestUseCase builds a usecase on a fresh fake store, no calendar.
func newTestUseCase(repo *fakeBlobStore) *implUseCase {
	return New(&mockLogger{}, repo, nil, "", "UTC")
}

func testTask(id, title string, due time.Time) model.Task {
	return model.Task{ID: id, Title: title, DueDate: due}
}
